package web_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/jshotsmedia/studio/internal/assistant"
	"github.com/jshotsmedia/studio/internal/db"
	"github.com/jshotsmedia/studio/internal/gate"
	"github.com/jshotsmedia/studio/internal/platform"
	"github.com/jshotsmedia/studio/internal/service"
	"github.com/jshotsmedia/studio/internal/store"
	"github.com/jshotsmedia/studio/internal/web"
	"github.com/jshotsmedia/studio/internal/web/templates"
)

// minimalJPEG is 512 bytes with the JPEG magic bytes header followed by zeros.
// http.DetectContentType identifies JPEG from the leading 0xFF 0xD8 bytes.
var minimalJPEG = func() []byte {
	b := make([]byte, 512)
	b[0] = 0xFF
	b[1] = 0xD8
	b[2] = 0xFF
	b[3] = 0xE0
	return b
}()

// scriptedResponder returns a fixed reply for every turn.
type scriptedResponder struct {
	reply string
}

func (s *scriptedResponder) Reply(_ context.Context, _ []assistant.Turn, _ string) (string, error) {
	return s.reply, nil
}

// memMedia is a simple in-memory mediastore.MediaStore.
type memMedia struct {
	mu      sync.Mutex
	staged  map[string][]byte
	assets  map[string][]byte
	mimes   map[string]string
	counter int
}

func newMemMedia() *memMedia {
	return &memMedia{
		staged: make(map[string][]byte),
		assets: make(map[string][]byte),
		mimes:  make(map[string]string),
	}
}

func (m *memMedia) Stage(_ context.Context, prefix, mimeType string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	key := fmt.Sprintf("%s_%d", prefix, m.counter)
	m.staged[key] = data
	m.mimes[key] = mimeType
	return key, nil
}

func (m *memMedia) Commit(_ context.Context, stageKey string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.staged[stageKey]
	if !ok {
		return "", fmt.Errorf("stage key not found: %s", stageKey)
	}
	delete(m.staged, stageKey)
	m.assets[stageKey] = data
	return stageKey, nil
}

func (m *memMedia) Discard(_ context.Context, stageKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.staged, stageKey)
	delete(m.mimes, stageKey)
	return nil
}

func (m *memMedia) Open(_ context.Context, assetKey string) (io.ReadCloser, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.assets[assetKey]
	if !ok {
		return nil, "", fmt.Errorf("asset key not found: %s", assetKey)
	}
	return io.NopCloser(bytes.NewReader(data)), m.mimes[assetKey], nil
}

// newTestServer sets up a real web.Server backed by in-memory SQLite and a
// scripted assistant. Returns the test server and a cleanup function.
func newTestServer(t *testing.T, reply string) (*httptest.Server, func()) {
	t.Helper()
	database, err := db.OpenForTesting()
	if err != nil {
		t.Fatalf("OpenForTesting: %v", err)
	}

	media := newMemMedia()
	logger := slog.Default()
	bridge := assistant.NewBridge(&scriptedResponder{reply: reply}, logger)
	studio := service.NewStudioService(
		store.NewRosterStore(database),
		store.NewCompanyStore(database),
		store.NewBoardStore(database),
		store.NewReviewStore(database),
		media,
		logger,
	)
	srv := httptest.NewServer(web.NewServer(web.Options{
		Studio:    studio,
		Booking:   service.NewBookingService(0, logger),
		Gallery:   service.NewGalleryService(store.NewGalleryStore(database), media, gate.NewFoldingCase("admin"), logger),
		Chat:      service.NewChatService(store.NewChatStore(database), bridge),
		Bridge:    bridge,
		Media:     media,
		AdminGate: gate.New("admin"),
		Install:   platform.NewInstallPrompt(),
		SiteURL:   "https://jshots.example",
		Templates: templates.FS,
		Logger:    logger,
	}))
	return srv, func() {
		srv.Close()
		_ = database.Close()
	}
}

// newClient returns an http.Client with a cookie jar so unlock sessions
// survive across requests.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return &http.Client{Jar: jar}
}

func getBody(t *testing.T, client *http.Client, url string) string {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("GET %s status %d: %s", url, resp.StatusCode, body)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(body)
}

// buildMultipartBody creates a multipart/form-data body with a file field and
// optional extra form values.
func buildMultipartBody(t *testing.T, field string, imageData []byte, extra map[string]string) (body *bytes.Buffer, contentType string) {
	t.Helper()
	body = &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile(field, "photo.jpg")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(imageData); err != nil {
		t.Fatalf("write image data: %v", err)
	}
	for k, v := range extra {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return body, w.FormDataContentType()
}

func TestIntegration_HomePage(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	srv, cleanup := newTestServer(t, "hi")
	defer cleanup()

	body := getBody(t, http.DefaultClient, srv.URL+"/")
	if !strings.Contains(body, "Capture Your Moments") {
		t.Errorf("home page missing hero copy:\n%s", body)
	}
	// The footer only shows away from home.
	if strings.Contains(body, "Privacy Policy") {
		t.Errorf("home page unexpectedly shows the footer")
	}
	teamBody := getBody(t, http.DefaultClient, srv.URL+"/views/team")
	if !strings.Contains(teamBody, "Privacy Policy") {
		t.Errorf("team page missing the footer")
	}
}

func TestIntegration_UnknownViewFallsBackToHome(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	srv, cleanup := newTestServer(t, "hi")
	defer cleanup()

	body := getBody(t, http.DefaultClient, srv.URL+"/views/nonsense")
	if !strings.Contains(body, "Capture Your Moments") {
		t.Errorf("unknown view did not fall back to home:\n%s", body)
	}
}

func TestIntegration_BookingFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	srv, cleanup := newTestServer(t, "hi")
	defer cleanup()
	client := newClient(t)

	form := url.Values{
		"name":         {"Ada Obi"},
		"email":        {"ada@example.com"},
		"phone":        {"+2348000000000"},
		"service_type": {"Photography"},
		"location":     {"Lekki Phase 1"},
		"date":         {"2026-10-01"},
		"time_slot":    {"10:00 AM - 12:00 PM"},
		"notes":        {"Outdoor shoot"},
	}
	resp, err := client.PostForm(srv.URL+"/bookings", form)
	if err != nil {
		t.Fatalf("POST /bookings: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 after redirect, got %d: %s", resp.StatusCode, body)
	}
	if !strings.Contains(string(body), "Booking Confirmed") || !strings.Contains(string(body), "Ada Obi") {
		t.Errorf("confirmation missing booking details:\n%s", body)
	}

	// Reopening brings back the form with the prior values intact.
	resp, err = client.PostForm(srv.URL+"/bookings/reopen", url.Values{})
	if err != nil {
		t.Fatalf("POST /bookings/reopen: %v", err)
	}
	body, _ = io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if !strings.Contains(string(body), `value="Ada Obi"`) {
		t.Errorf("reopened form lost prior values:\n%s", body)
	}
}

func TestIntegration_BookingValidation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	srv, cleanup := newTestServer(t, "hi")
	defer cleanup()

	resp, err := http.PostForm(srv.URL+"/bookings", url.Values{"name": {"Ada"}})
	if err != nil {
		t.Fatalf("POST /bookings: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for incomplete form, got %d", resp.StatusCode)
	}
}

func TestIntegration_GalleryUnlockAndUpload(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	srv, cleanup := newTestServer(t, "hi")
	defer cleanup()
	client := newClient(t)

	// Upload before unlocking is rejected.
	body, contentType := buildMultipartBody(t, "photo", minimalJPEG, map[string]string{
		"caption": "too early", "category": "Events",
	})
	resp, err := client.Post(srv.URL+"/gallery/photos", contentType, body)
	if err != nil {
		t.Fatalf("POST /gallery/photos: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 before unlock, got %d", resp.StatusCode)
	}

	// The access PIN is case-insensitive.
	resp, err = client.PostForm(srv.URL+"/gallery/unlock", url.Values{"pin": {"ADMIN"}})
	if err != nil {
		t.Fatalf("POST /gallery/unlock: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unlock did not land on gallery, got %d", resp.StatusCode)
	}

	body, contentType = buildMultipartBody(t, "photo", minimalJPEG, map[string]string{
		"caption": "Birthday at Ajah", "category": "Events",
	})
	resp, err = client.Post(srv.URL+"/gallery/photos", contentType, body)
	if err != nil {
		t.Fatalf("POST /gallery/photos: %v", err)
	}
	page, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upload failed with %d: %s", resp.StatusCode, page)
	}

	// The new photo leads the grid, ahead of all seeded items.
	newIdx := strings.Index(string(page), "Birthday at Ajah")
	seedIdx := strings.Index(string(page), "Studio Session in Ikeja")
	if newIdx < 0 || seedIdx < 0 || newIdx > seedIdx {
		t.Errorf("uploaded photo is not first in the grid (new=%d seed=%d)", newIdx, seedIdx)
	}

	// The stored asset is served back under /media.
	m := regexp.MustCompile(`src="(/media/[^"]+)"`).FindStringSubmatch(string(page))
	if m == nil {
		t.Fatalf("no /media src found in gallery page:\n%s", page)
	}
	mediaResp, err := client.Get(srv.URL + m[1])
	if err != nil {
		t.Fatalf("GET %s: %v", m[1], err)
	}
	defer mediaResp.Body.Close()
	if mediaResp.StatusCode != http.StatusOK {
		t.Fatalf("media fetch status %d", mediaResp.StatusCode)
	}
	if got := mediaResp.Header.Get("Content-Type"); got != "image/jpeg" {
		t.Errorf("media content type = %q, want image/jpeg", got)
	}
}

func TestIntegration_GalleryUploadRequiresCaption(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	srv, cleanup := newTestServer(t, "hi")
	defer cleanup()
	client := newClient(t)

	resp, err := client.PostForm(srv.URL+"/gallery/unlock", url.Values{"pin": {"admin"}})
	if err != nil {
		t.Fatalf("POST /gallery/unlock: %v", err)
	}
	_ = resp.Body.Close()

	body, contentType := buildMultipartBody(t, "photo", minimalJPEG, map[string]string{
		"caption": "", "category": "Events",
	})
	resp, err = client.Post(srv.URL+"/gallery/photos", contentType, body)
	if err != nil {
		t.Fatalf("POST /gallery/photos: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for missing caption, got %d", resp.StatusCode)
	}
}

func TestIntegration_AdminGate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	srv, cleanup := newTestServer(t, "hi")
	defer cleanup()
	client := newClient(t)

	// The dashboard PIN is case-sensitive, unlike the gallery PIN.
	resp, err := client.PostForm(srv.URL+"/admin/unlock", url.Values{"pin": {"ADMIN"}})
	if err != nil {
		t.Fatalf("POST /admin/unlock: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong-case PIN, got %d", resp.StatusCode)
	}

	resp, err = client.PostForm(srv.URL+"/admin/unlock", url.Values{"pin": {"admin"}})
	if err != nil {
		t.Fatalf("POST /admin/unlock: %v", err)
	}
	page, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unlock failed with %d: %s", resp.StatusCode, page)
	}
	if !strings.Contains(string(page), "Boardroom") {
		t.Errorf("dashboard not shown after unlock:\n%s", page)
	}

	// Mutations are blocked without the session cookie.
	resp, err = http.PostForm(srv.URL+"/admin/settings", url.Values{"phone": {"x"}, "email": {"x@example.com"}})
	if err != nil {
		t.Fatalf("POST /admin/settings: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 without session, got %d", resp.StatusCode)
	}
}

func TestIntegration_AdminBoardAlignment(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	srv, cleanup := newTestServer(t, "hi")
	defer cleanup()
	client := newClient(t)

	resp, err := client.PostForm(srv.URL+"/admin/unlock", url.Values{"pin": {"admin"}})
	if err != nil {
		t.Fatalf("POST /admin/unlock: %v", err)
	}
	_ = resp.Body.Close()

	resp, err = client.PostForm(srv.URL+"/admin/board", url.Values{
		"identity": {"Director"}, "text": {"Shoot moved to Saturday"},
	})
	if err != nil {
		t.Fatalf("POST /admin/board: %v", err)
	}
	page, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if !strings.Contains(string(page), "Shoot moved to Saturday") {
		t.Fatalf("board post missing from board:\n%s", page)
	}
	// Viewing as the sender aligns the message to the right.
	if !strings.Contains(string(page), `class="mine"`) {
		t.Errorf("sender's own message not aligned:\n%s", page)
	}

	// The same message viewed as another identity is not aligned.
	other := getBody(t, client, srv.URL+"/views/admin?tab=board&identity=Secretary")
	if strings.Contains(other, `class="mine"`) {
		t.Errorf("message aligned for a different identity:\n%s", other)
	}
}

func TestIntegration_ChatSend(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	srv, cleanup := newTestServer(t, "We are open 8am to 8pm.")
	defer cleanup()
	client := newClient(t)

	resp, err := client.PostForm(srv.URL+"/workplace/chat", url.Values{"message": {"When are you open?"}})
	if err != nil {
		t.Fatalf("POST /workplace/chat: %v", err)
	}
	page, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if !strings.Contains(string(page), "When are you open?") ||
		!strings.Contains(string(page), "We are open 8am to 8pm.") {
		t.Errorf("transcript missing exchange:\n%s", page)
	}
	// The seeded welcome message is still at the top of the transcript.
	if !strings.Contains(string(page), "Welcome to the J Shots Media Workplace") {
		t.Errorf("welcome message missing from transcript:\n%s", page)
	}
}

func TestIntegration_ChatPartialUpdate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	srv, cleanup := newTestServer(t, "Sure, I can help with that.")
	defer cleanup()

	form := url.Values{"message": {"Can I book for Saturday?"}}
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/workplace/chat", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST /workplace/chat: %v", err)
	}
	page, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, page)
	}
	if strings.Contains(string(page), "<html") {
		t.Errorf("HX-Request returned a full page instead of a fragment:\n%s", page)
	}
	if !strings.Contains(string(page), "Sure, I can help with that.") {
		t.Errorf("fragment missing reply:\n%s", page)
	}
}

func TestIntegration_ReviewsAndShare(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	srv, cleanup := newTestServer(t, "hi")
	defer cleanup()
	client := newClient(t)

	resp, err := client.PostForm(srv.URL+"/workplace/reviews?tab=reviews", url.Values{
		"author": {"Kemi A."}, "rating": {"5"}, "text": {"Stunning portraits."},
	})
	if err != nil {
		t.Fatalf("POST /workplace/reviews: %v", err)
	}
	page, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if !strings.Contains(string(page), "Kemi A.") {
		t.Fatalf("new review missing:\n%s", page)
	}
	// Newest review leads the list.
	newIdx := strings.Index(string(page), "Kemi A.")
	seedIdx := strings.Index(string(page), "review-list")
	if newIdx < 0 || seedIdx < 0 {
		t.Fatalf("review list missing markers:\n%s", page)
	}

	// The share link redirects to a pre-filled compose URL.
	m := regexp.MustCompile(`href="(/share/review/\d+)"`).FindStringSubmatch(string(page))
	if m == nil {
		t.Fatalf("no share link found:\n%s", page)
	}
	noRedirect := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}}
	shareResp, err := noRedirect.Get(srv.URL + m[1])
	if err != nil {
		t.Fatalf("GET %s: %v", m[1], err)
	}
	_ = shareResp.Body.Close()
	if shareResp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303 from share, got %d", shareResp.StatusCode)
	}
	loc := shareResp.Header.Get("Location")
	if !strings.HasPrefix(loc, "https://twitter.com/intent/tweet?") {
		t.Errorf("share location = %q, want twitter compose URL", loc)
	}
}

func TestIntegration_AdminMemberPhoto(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	srv, cleanup := newTestServer(t, "hi")
	defer cleanup()
	client := newClient(t)

	resp, err := client.PostForm(srv.URL+"/admin/unlock", url.Values{"pin": {"admin"}})
	if err != nil {
		t.Fatalf("POST /admin/unlock: %v", err)
	}
	_ = resp.Body.Close()

	body, contentType := buildMultipartBody(t, "photo", minimalJPEG, nil)
	resp, err = client.Post(srv.URL+"/admin/team/1/photo", contentType, body)
	if err != nil {
		t.Fatalf("POST /admin/team/1/photo: %v", err)
	}
	page, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("photo update failed with %d: %s", resp.StatusCode, page)
	}
	if !strings.Contains(string(page), `src="/media/team_`) {
		t.Errorf("member image not swapped to uploaded asset:\n%s", page)
	}
}
