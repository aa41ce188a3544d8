package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"suraksha/internal/api/handlers"
	"suraksha/internal/models"
	"suraksha/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// stubDispatcher records dispatched alerts for assertions
type stubDispatcher struct {
	mu            sync.Mutex
	notifications []string
	spoken        []string
	languages     []string
}

func (d *stubDispatcher) Notify(title, body string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notifications = append(d.notifications, title)
}

func (d *stubDispatcher) Speak(message, language string, severity models.AlertSeverity) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.spoken = append(d.spoken, message)
	d.languages = append(d.languages, language)
}

func scanRouter(tc *testutil.TestContext, dispatcher *stubDispatcher, user *models.User) *gin.Engine {
	handler := handlers.NewScanHandler(tc.Scanner, tc.Ledger, tc.NotificationRepo, dispatcher, tc.Logger)

	r := gin.New()
	if user != nil {
		r.Use(func(c *gin.Context) {
			c.Set("user", user)
			c.Next()
		})
	}
	r.POST("/scan/email", handler.ScanEmail)
	r.POST("/scan/website", handler.ScanWebsite)
	r.POST("/scan/file", handler.ScanFile)
	r.GET("/scan/history", handler.History)
	r.GET("/scan/notifications", handler.Notifications)
	return r
}

func TestScanHandler_ScanEmailPhishing(t *testing.T) {
	tc := testutil.NewTestContext(t)
	dispatcher := &stubDispatcher{}
	user := tc.CreateTestUser("Asha", "asha@example.com", "strongpassword", true)
	user.Language = "Hindi"
	router := scanRouter(tc, dispatcher, user)

	w := postJSON(t, router, "/scan/email", models.EmailScanRequest{
		Content: "Please verify account immediately or it will be suspended",
		Sender:  "alerts@paypal-security.com",
		Subject: "Account locked",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var analysis models.EmailAnalysis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analysis))
	require.True(t, analysis.IsPhishing)

	// A phishing verdict raises an alert and both notification channels
	alerts, err := tc.Ledger.Alerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.Equal(t, "Phishing Email Detected", alerts[0].Title)
	require.Equal(t, models.CategoryPhishing, alerts[0].Category)

	require.Len(t, dispatcher.notifications, 1)
	require.Equal(t, []string{"Phishing Email Detected"}, dispatcher.spoken)
	require.Equal(t, []string{"Hindi"}, dispatcher.languages)

	// Every analysis lands in the notification history
	history, err := tc.NotificationRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
}

func TestScanHandler_ScanEmailClean(t *testing.T) {
	tc := testutil.NewTestContext(t)
	dispatcher := &stubDispatcher{}
	router := scanRouter(tc, dispatcher, nil)

	w := postJSON(t, router, "/scan/email", models.EmailScanRequest{
		Content: "Lunch tomorrow?",
		Sender:  "friend@example.com",
		Subject: "Hi",
	})
	require.Equal(t, http.StatusOK, w.Code)

	alerts, err := tc.Ledger.Alerts(context.Background())
	require.NoError(t, err)
	require.Empty(t, alerts)
	require.Empty(t, dispatcher.notifications)

	// Clean analyses still enter the history
	history, err := tc.NotificationRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
}

func TestScanHandler_ScanWebsiteMalware(t *testing.T) {
	tc := testutil.NewTestContext(t)
	dispatcher := &stubDispatcher{}
	router := scanRouter(tc, dispatcher, nil)

	w := postJSON(t, router, "/scan/website", models.WebsiteScanRequest{
		URL: "http://malware-host.example.com/free-software",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var analysis models.ThreatAnalysis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analysis))
	require.True(t, analysis.IsMalware)
	require.NotEmpty(t, analysis.Recommendations)

	alerts, err := tc.Ledger.Alerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	require.Equal(t, models.SeverityHigh, alerts[0].Severity)
	require.Equal(t, []string{"Malware Detected"}, dispatcher.spoken)
	// No user in context falls back to the default language
	require.Equal(t, []string{"English"}, dispatcher.languages)
}

func TestScanHandler_ScanFile(t *testing.T) {
	tc := testutil.NewTestContext(t)
	dispatcher := &stubDispatcher{}
	router := scanRouter(tc, dispatcher, nil)

	w := postJSON(t, router, "/scan/file", models.FileScanRequest{
		Path: "/downloads/crack_tool.exe",
		Name: "crack_tool.exe",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var analysis models.FileAnalysis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analysis))
	require.True(t, analysis.IsMalware)
	require.False(t, analysis.SizeKnown)

	// Every file scan records a history entry
	entries, err := tc.Ledger.History(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, 1, entries[0].FilesScanned)
	require.Equal(t, len(analysis.Threats), entries[0].ThreatsFound)

	require.Equal(t, []string{"Malware Detected"}, dispatcher.spoken)
}

func TestScanHandler_EmptyListsSerializeAsArrays(t *testing.T) {
	tc := testutil.NewTestContext(t)
	router := scanRouter(tc, &stubDispatcher{}, nil)

	for _, path := range []string{"/scan/history", "/scan/notifications"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", path, nil)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "[]", w.Body.String())
	}
}
