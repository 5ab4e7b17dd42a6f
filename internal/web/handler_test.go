package web_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhammedQureshi/BarberPages/internal/booking"
	"github.com/MuhammedQureshi/BarberPages/internal/web"
)

func newTestServer(t *testing.T) (*httptest.Server, *booking.MemoryRepository) {
	t.Helper()

	repo := booking.NewMemoryRepository()
	log := slog.New(slog.DiscardHandler)
	writer := booking.NewWriter(repo, log)
	handler := web.NewHandler(writer, repo, log, "http://localhost:8080")

	srv := httptest.NewServer(handler.Router())
	t.Cleanup(srv.Close)

	return srv, repo
}

func createPage(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()

	resp, err := http.Post(srv.URL+"/api/bookings", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

const validBody = `{
	"businessName": "Jay's Barbershop",
	"services": [{"name": "Haircut", "price": "25"}, {"name": "Beard Trim", "price": "15"}],
	"contactMethod": "whatsapp",
	"contactValue": "+1 (555) 010-2233",
	"calendly": "https://calendly.com/jay",
	"stripe": "https://buy.stripe.com/test_jay",
	"email": "jay@example.com"
}`

func TestCreateBooking(t *testing.T) {
	t.Parallel()

	t.Run("valid request returns slug", func(t *testing.T) {
		t.Parallel()

		srv, repo := newTestServer(t)

		resp := createPage(t, srv, validBody)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var got struct {
			Success bool   `json:"success"`
			Slug    string `json:"slug"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.True(t, got.Success)
		assert.Equal(t, "jays-barbershop", got.Slug)
		assert.Equal(t, 1, repo.Len())
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		t.Parallel()

		srv, repo := newTestServer(t)

		resp := createPage(t, srv, `{"businessName": "Jay's Barbershop"}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var got struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, "Missing required fields.", got.Error)
		assert.Equal(t, 0, repo.Len())
	})

	t.Run("malformed body returns 500", func(t *testing.T) {
		t.Parallel()

		srv, repo := newTestServer(t)

		resp := createPage(t, srv, `{"businessName":`)
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, 0, repo.Len())
	})

	t.Run("repeat names get distinct slugs", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTestServer(t)

		slugs := make([]string, 0, 3)
		for range 3 {
			resp := createPage(t, srv, validBody)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var got struct {
				Slug string `json:"slug"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			slugs = append(slugs, got.Slug)
		}

		assert.Equal(t, []string{"jays-barbershop", "jays-barbershop-1", "jays-barbershop-2"}, slugs)
	})
}

func TestBookingPage(t *testing.T) {
	t.Parallel()

	t.Run("renders business page", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTestServer(t)
		createPage(t, srv, validBody)

		resp, err := http.Get(srv.URL + "/jays-barbershop")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var buf bytes.Buffer
		_, err = buf.ReadFrom(resp.Body)
		require.NoError(t, err)
		body := buf.String()

		assert.Contains(t, body, "Jay&#39;s Barbershop")
		assert.Contains(t, body, "Haircut")
		assert.Contains(t, body, "$25")
		assert.Contains(t, body, "https://wa.me/15550102233")
		assert.Contains(t, body, "https://calendly.com/jay")
		assert.Contains(t, body, "https://buy.stripe.com/test_jay")
	})

	t.Run("email contact links to mailto", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTestServer(t)
		createPage(t, srv, `{
			"businessName": "Quiet Cuts",
			"services": [{"name": "Fade", "price": "30"}],
			"contactMethod": "email",
			"contactValue": "hello@quietcuts.example",
			"email": "owner@quietcuts.example"
		}`)

		resp, err := http.Get(srv.URL + "/quiet-cuts")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var buf bytes.Buffer
		_, err = buf.ReadFrom(resp.Body)
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "mailto:hello@quietcuts.example")
	})

	t.Run("unknown slug returns 404", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTestServer(t)

		resp, err := http.Get(srv.URL + "/no-such-page")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestQRCode(t *testing.T) {
	t.Parallel()

	t.Run("returns png for existing page", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTestServer(t)
		createPage(t, srv, validBody)

		resp, err := http.Get(srv.URL + "/jays-barbershop/qr")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

		var buf bytes.Buffer
		_, err = buf.ReadFrom(resp.Body)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")))
	})

	t.Run("unknown slug returns 404", func(t *testing.T) {
		t.Parallel()

		srv, _ := newTestServer(t)

		resp, err := http.Get(srv.URL + "/no-such-page/qr")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestHome(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}
