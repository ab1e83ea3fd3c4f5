package handlers

import (
	"net/http"
	"net/url"
	"outings/models"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeForm(overrides map[string]string) url.Values {
	form := url.Values{
		"name":     {"Cafe A"},
		"loc":      {"Main St"},
		"category": {"Coffee"},
		"desc":     {"Good coffee"},
	}
	for k, v := range overrides {
		form.Set(k, v)
	}
	return form
}

func TestPlaceNew_RequiresLogin(t *testing.T) {
	cl := newClient(t)

	w := cl.get("/newplace")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/signin", w.Header().Get("Location"))

	w = cl.post("/newplace", placeForm(nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/signin", w.Header().Get("Location"))
	assert.Zero(t, countRows(t, &models.Place{}))

	w = cl.get("/signin")
	assert.Contains(t, w.Body.String(), "Please log in to access this page.")
}

func TestPlaceNew_Validation(t *testing.T) {
	tests := []struct {
		name       string
		overrides  map[string]string
		wantStatus int
		wantMsg    string
	}{
		{"empty name", map[string]string{"name": ""}, http.StatusBadRequest, MsgAllFieldsRequired},
		{"empty location", map[string]string{"loc": ""}, http.StatusBadRequest, MsgAllFieldsRequired},
		{"empty description", map[string]string{"desc": ""}, http.StatusBadRequest, MsgAllFieldsRequired},
		{"placeholder category", map[string]string{"category": "Choose..."}, http.StatusBadRequest, MsgAllFieldsRequired},
		{"reserved name", map[string]string{"name": "Places"}, http.StatusBadRequest, MsgPlaceNameReserved},
		{"slash in name", map[string]string{"name": "A/B"}, http.StatusBadRequest, MsgPlaceNameReserved},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cl := newClient(t)
			cl.signupAndLogin()

			w := cl.post("/newplace", placeForm(tt.overrides))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMsg)
			assert.Zero(t, countRows(t, &models.Place{}))
		})
	}
}

func TestPlaceNew_Success(t *testing.T) {
	cl := newClient(t)
	cl.signupAndLogin()

	w := cl.get("/newplace")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Choose...")

	w = cl.post("/newplace", placeForm(nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/places", w.Header().Get("Location"))

	place, err := models.PlaceByName("Cafe A")
	require.NoError(t, err)
	assert.Equal(t, "Coffee", place.Category)
	assert.Equal(t, "Main St", place.Location)

	w = cl.post("/newplace", placeForm(map[string]string{"loc": "Elsewhere"}))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), MsgPlaceExists)
	assert.EqualValues(t, 1, countRows(t, &models.Place{}))
}

func TestPlaceList(t *testing.T) {
	cl := newClient(t)
	for _, name := range []string{"Zoo", "Arcade", "Museum"} {
		_, err := models.PlaceCreate(name, "Town", "Culture", "About "+name)
		require.NoError(t, err)
	}
	w := cl.get("/places")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	arcade := strings.Index(body, "About Arcade")
	museum := strings.Index(body, "About Museum")
	zoo := strings.Index(body, "About Zoo")
	require.True(t, arcade >= 0 && museum >= 0 && zoo >= 0, body)
	assert.True(t, arcade < museum && museum < zoo, "places should be ordered by name")
	assert.Contains(t, body, `href="/Arcade"`)
}

func TestPlaceView(t *testing.T) {
	cl := newClient(t)
	author, err := models.UserCreate("bob@example.com", "Bob", "Builder", "secret", 2024)
	require.NoError(t, err)
	cafe, err := models.PlaceCreate("Cafe A", "Main St", "Coffee", "Good coffee")
	require.NoError(t, err)

	w := cl.get("/Cafe%20A")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Average rating: 0.00")
	assert.Contains(t, w.Body.String(), "Average budget: $0.00")
	assert.Contains(t, w.Body.String(), "No reviews yet.")

	_, err = models.ReviewCreate(&cafe, &author, 4, 10, "Nice")
	require.NoError(t, err)
	_, err = models.ReviewCreate(&cafe, &author, 2, 20, "Crowded")
	require.NoError(t, err)

	w = cl.get("/Cafe%20A")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Average rating: 3.00")
	assert.Contains(t, body, "Average budget: $15.00")
	assert.Contains(t, body, "Nice")
	assert.Contains(t, body, "Crowded")
	assert.Contains(t, body, "Bob")
	assert.Contains(t, body, "Main St")
}

func TestPlaceView_NotFound(t *testing.T) {
	cl := newClient(t)
	_, err := models.PlaceCreate("Cafe A", "Main St", "Coffee", "Good coffee")
	require.NoError(t, err)

	for _, path := range []string{"/Cafe", "/cafe%20a", "/Nowhere"} {
		w := cl.get(path)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Contains(t, w.Body.String(), MsgPlaceNotFound, path)
	}
}
