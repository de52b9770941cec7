package admin

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"webatelier-backend/middleware"
	"webatelier-backend/monitoring"
	"webatelier-backend/testutils"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func performLogin(r http.Handler, username string, password string) *httptest.ResponseRecorder {
	jsonData, _ := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})

	req, _ := http.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)
	return resp
}

func TestLogin_ConfiguredCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("S3cretMotDePasse"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	t.Setenv("ADMIN_USERNAME", "gerante")
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))
	t.Setenv("JWT_SECRET", "test-secret")

	r := testutils.SetupTestRouter()
	r.POST("/api/admin/login", Login)

	resp := performLogin(r, "gerante", "S3cretMotDePasse")

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, true, respBody["success"])
	assert.NotEmpty(t, respBody["token"])
}

func TestLogin_WrongPasswordIsGeneric(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("S3cretMotDePasse"), bcrypt.DefaultCost)

	t.Setenv("ADMIN_USERNAME", "gerante")
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))

	r := testutils.SetupTestRouter()
	r.POST("/api/admin/login", Login)

	resp := performLogin(r, "gerante", "mauvais-mot-de-passe")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	// Message générique, identique quel que soit le champ fautif
	assert.Equal(t, "Invalid credentials", respBody["error"])
}

func TestLogin_WrongUsernameSameMessage(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("S3cretMotDePasse"), bcrypt.DefaultCost)

	t.Setenv("ADMIN_USERNAME", "gerante")
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))

	r := testutils.SetupTestRouter()
	r.POST("/api/admin/login", Login)

	resp := performLogin(r, "intrus", "S3cretMotDePasse")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Invalid credentials", respBody["error"])
}

func TestLogin_DevFallbackDisabledByDefault(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("ADMIN_DEV_FALLBACK", "")

	r := testutils.SetupTestRouter()
	r.POST("/api/admin/login", Login)

	resp := performLogin(r, "admin", "admin123")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestLogin_DevFallbackWhenEnabled(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("ADMIN_DEV_FALLBACK", "true")
	t.Setenv("JWT_SECRET", "test-secret")

	r := testutils.SetupTestRouter()
	r.POST("/api/admin/login", Login)

	resp := performLogin(r, "admin", "admin123")

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.NotEmpty(t, respBody["token"])
}

func TestGetErrors_ReturnsBufferContents(t *testing.T) {
	m := monitoring.New()
	m.RecordError(monitoring.ErrorEntry{
		Timestamp: time.Now(),
		Path:      "/api/contact",
		Method:    "POST",
		ClientIP:  "203.0.113.7",
		Message:   "HTTP 500",
	})

	r := testutils.SetupTestRouter()
	r.GET("/api/admin/errors", GetErrors(m))

	req, _ := http.NewRequest(http.MethodGet, "/api/admin/errors", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, float64(1), respBody["count"])
}

func TestAdminRoutes_RejectWithoutToken(t *testing.T) {
	m := monitoring.New()

	r := testutils.SetupTestRouter()
	adminRoutes := r.Group("/api/admin")
	adminRoutes.Use(middleware.AdminAuth())
	adminRoutes.GET("/errors", GetErrors(m))

	req, _ := http.NewRequest(http.MethodGet, "/api/admin/errors", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestGetContacts(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "contacts"`).
		WillReturnRows(mock.NewRows([]string{"id", "name", "email", "message", "created_at"}).
			AddRow("abc-123", "Jean Dupont", "jean@test.fr", "Bonjour, je souhaite un devis pour mon site.", time.Now()))

	r := testutils.SetupTestRouter()
	r.GET("/api/admin/contacts", GetContacts)

	req, _ := http.NewRequest(http.MethodGet, "/api/admin/contacts", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, float64(1), respBody["count"])
}
