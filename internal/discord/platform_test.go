package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/MrBrad8989/gta-events-bot/internal/domain"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	body   string
}

type stubResponse struct {
	status int
	body   string
}

// fakeDiscord answers REST calls by "METHOD path-suffix".
type fakeDiscord struct {
	mu        sync.Mutex
	routes    map[string]stubResponse
	requests  []recordedRequest
	unmatched []string
}

func (f *fakeDiscord) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, recordedRequest{method: req.Method, path: req.URL.Path, body: string(body)})

	for key, stub := range f.routes {
		method, suffix, _ := strings.Cut(key, " ")
		if req.Method == method && strings.HasSuffix(req.URL.Path, suffix) {
			return &http.Response{
				StatusCode: stub.status,
				Header:     http.Header{"Content-Type": []string{"application/json"}},
				Body:       io.NopCloser(strings.NewReader(stub.body)),
				Request:    req,
			}, nil
		}
	}

	f.unmatched = append(f.unmatched, req.Method+" "+req.URL.Path)
	return &http.Response{
		StatusCode: http.StatusNotFound,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(`{"code":10003,"message":"Unknown Channel"}`)),
		Request:    req,
	}, nil
}

func (f *fakeDiscord) find(method, suffix string) *recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.requests {
		if f.requests[i].method == method && strings.HasSuffix(f.requests[i].path, suffix) {
			return &f.requests[i]
		}
	}
	return nil
}

type memMedia map[string]string

func (m memMedia) Open(name string) (io.ReadCloser, error) {
	data, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, fs.ErrNotExist)
	}
	return io.NopCloser(strings.NewReader(data)), nil
}

var testConfig = Config{
	GuildID:               "g1",
	ModerationChannelID:   "modch",
	AnnouncementChannelID: "annch",
	TicketCategoryID:      "cat1",
	SupportRoleID:         "support",
}

func newTestPlatform(t *testing.T, routes map[string]stubResponse, media memMedia) (*Platform, *fakeDiscord) {
	t.Helper()

	fake := &fakeDiscord{routes: routes}
	s, err := NewSession("test-token")
	require.NoError(t, err)
	s.Client = &http.Client{Transport: fake}
	s.MaxRestRetries = 0

	return NewPlatform(s, testConfig, media, newTestLogger(t)), fake
}

func TestPlatform_PostModerationSummary(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]stubResponse{
		"POST /channels/modch/messages": {200, `{"id":"m1","channel_id":"modch"}`},
	}, memMedia{"abc.png": "img"})

	id, err := p.PostModerationSummary(context.Background(), testRecord(), &domain.User{DiscordID: "111"})

	require.NoError(t, err)
	assert.Equal(t, "m1", id)

	req := fake.find("POST", "/channels/modch/messages")
	require.NotNil(t, req)
	assert.Contains(t, req.body, "attachment://flyer.png")
	assert.Contains(t, req.body, "accept_12")
	assert.Contains(t, req.body, "reject_12")
}

func TestPlatform_PublishAnnouncement_ReturnsHostedFlyer(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]stubResponse{
		"POST /channels/annch/messages": {200, `{"id":"pub1","channel_id":"annch",
			"embeds":[{"image":{"url":"https://cdn.discordapp.com/attachments/1/2/flyer.png"}}]}`},
	}, memMedia{"abc.png": "img"})

	id, url, err := p.PublishAnnouncement(context.Background(), testRecord(), &domain.User{DiscordID: "111"})

	require.NoError(t, err)
	assert.Equal(t, "pub1", id)
	assert.Equal(t, "https://cdn.discordapp.com/attachments/1/2/flyer.png", url)
	assert.Contains(t, fake.find("POST", "/channels/annch/messages").body, "interested_12")
}

func TestPlatform_PublishAnnouncement_Error(t *testing.T) {
	p, _ := newTestPlatform(t, map[string]stubResponse{
		"POST /channels/annch/messages": {403, `{"code":50013,"message":"Missing Permissions"}`},
	}, memMedia{"abc.png": "img"})

	_, _, err := p.PublishAnnouncement(context.Background(), testRecord(), &domain.User{DiscordID: "111"})

	require.Error(t, err)
}

func TestPlatform_UpdateInterestCounter(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]stubResponse{
		"GET /channels/annch/messages/pub1": {200, `{"id":"pub1","embeds":[{"title":"x",
			"fields":[{"name":"Interesados","value":"0 personas"}]}]}`},
		"PATCH /channels/annch/messages/pub1": {200, `{"id":"pub1"}`},
	}, nil)

	err := p.UpdateInterestCounter(context.Background(), "pub1", 3)

	require.NoError(t, err)
	req := fake.find("PATCH", "/channels/annch/messages/pub1")
	require.NotNil(t, req)
	assert.Contains(t, req.body, "3 personas")
}

func TestPlatform_CreateSupportChannel(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]stubResponse{
		"POST /guilds/g1/channels":    {200, `{"id":"ch1","type":0}`},
		"POST /channels/ch1/messages": {200, `{"id":"intro"}`},
	}, memMedia{"map1.png": "m"})

	e := testRecord()
	e.MappingImages = []string{"map1.png"}

	id, err := p.CreateSupportChannel(context.Background(), e, &domain.User{DiscordID: "111"}, "222")

	require.NoError(t, err)
	assert.Equal(t, "ch1", id)

	req := fake.find("POST", "/guilds/g1/channels")
	require.NotNil(t, req)

	var payload struct {
		Name                 string `json:"name"`
		ParentID             string `json:"parent_id"`
		PermissionOverwrites []struct {
			ID    string `json:"id"`
			Allow string `json:"allow"`
			Deny  string `json:"deny"`
		} `json:"permission_overwrites"`
	}
	require.NoError(t, json.Unmarshal([]byte(req.body), &payload))
	assert.Equal(t, "evento-12-carrera-nocturna-vinewood", payload.Name)
	assert.Equal(t, "cat1", payload.ParentID)

	var ids []string
	for _, o := range payload.PermissionOverwrites {
		ids = append(ids, o.ID)
	}
	assert.ElementsMatch(t, []string{"g1", "111", "222", "support"}, ids)

	intro := fake.find("POST", "/channels/ch1/messages")
	require.NotNil(t, intro)
	assert.Contains(t, intro.body, "close_12")
	assert.Contains(t, intro.body, "map1.png")
}

func TestPlatform_CreateSupportChannel_IntroFailureKeepsChannel(t *testing.T) {
	p, _ := newTestPlatform(t, map[string]stubResponse{
		"POST /guilds/g1/channels": {200, `{"id":"ch1","type":0}`},
	}, memMedia{})

	id, err := p.CreateSupportChannel(context.Background(), testRecord(), &domain.User{DiscordID: "111"}, "222")

	require.NoError(t, err)
	assert.Equal(t, "ch1", id)
}

func TestPlatform_DirectMessage(t *testing.T) {
	tests := []struct {
		name string
		send stubResponse
		want domain.DeliveryOutcome
	}{
		{"delivered", stubResponse{200, `{"id":"dm-msg"}`}, domain.DeliveryDelivered},
		{"dms closed", stubResponse{403, `{"code":50007,"message":"Cannot send messages to this user"}`}, domain.DeliverySkipped},
		{"other error", stubResponse{403, `{"code":50013,"message":"Missing Permissions"}`}, domain.DeliveryFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPlatform(t, map[string]stubResponse{
				"POST /users/@me/channels":    {200, `{"id":"dm1","type":1}`},
				"POST /channels/dm1/messages": tt.send,
			}, nil)

			assert.Equal(t, tt.want, p.DirectMessage(context.Background(), "u9", "hola"))
		})
	}
}

func TestPlatform_AnnounceStart_RepliesToAnnouncement(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]stubResponse{
		"POST /channels/annch/messages": {200, `{"id":"start1"}`},
	}, nil)

	e := testRecord()
	pub := "pub1"
	e.PublicMessageID = &pub

	require.NoError(t, p.AnnounceStart(context.Background(), e))

	body := fake.find("POST", "/channels/annch/messages").body
	assert.Contains(t, body, `"message_id":"pub1"`)
	assert.Contains(t, body, "comienza ahora")
}

func TestPlatform_DeleteChannel(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]stubResponse{
		"DELETE /channels/ch1": {200, `{"id":"ch1"}`},
	}, nil)

	require.NoError(t, p.DeleteChannel(context.Background(), "ch1"))
	assert.NotNil(t, fake.find("DELETE", "/channels/ch1"))
}

func TestPlatform_ClearModerationControls(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]stubResponse{
		"PATCH /channels/modch/messages/m1": {200, `{"id":"m1"}`},
	}, nil)

	require.NoError(t, p.ClearModerationControls(context.Background(), "m1", "✅ Aprobado"))

	body := fake.find("PATCH", "/channels/modch/messages/m1").body
	assert.Contains(t, body, `"components":[]`)
	assert.Contains(t, body, "Aprobado")
}

func TestDMClosed(t *testing.T) {
	err := &discordgo.RESTError{Message: &discordgo.APIErrorMessage{Code: discordgo.ErrCodeCannotSendMessagesToThisUser}}
	assert.True(t, dmClosed(err))
	assert.False(t, dmClosed(&discordgo.RESTError{}))
}

func TestPlatform_PublishAnnouncement_MissingFlyer(t *testing.T) {
	p, fake := newTestPlatform(t, map[string]stubResponse{
		"POST /channels/annch/messages": {200, `{"id":"pub1"}`},
	}, memMedia{})

	id, url, err := p.PublishAnnouncement(context.Background(), testRecord(), &domain.User{DiscordID: "111"})

	require.NoError(t, err)
	assert.Equal(t, "pub1", id)
	assert.Empty(t, url)
	assert.NotContains(t, fake.find("POST", "/channels/annch/messages").body, "attachment://")
}
