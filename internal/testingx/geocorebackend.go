package testingx

//
// Fake Geocore backend implementing the register and login flows.
//

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/jatiwn/geocore-tutorial-1/httpx"
	"github.com/jatiwn/geocore-tutorial-1/runtimex"
)

// GeocoreBackendUserRecord is a user record used by [GeocoreBackend].
type GeocoreBackendUserRecord struct {
	// Password is the user's password.
	Password string

	// Token is the last token issued for this user.
	Token string
}

// GeocoreBackend implements the register and login workflows and a
// minimal in-memory store for places and binary data.
//
// The zero value is ready to use.
//
// This struct's methods panic for several errors. Only use for
// testing purposes!
type GeocoreBackend struct {
	// ProjectID is the OPTIONAL project ID; when set, login requests
	// carrying a different project_id are rejected.
	ProjectID string

	// LoginCalls counts the login requests received.
	LoginCalls atomic.Int64

	// RegisterCalls counts the register requests received.
	RegisterCalls atomic.Int64

	// logins maps user IDs to the corresponding record.
	logins map[string]*GeocoreBackendUserRecord

	// tokens maps issued tokens to user IDs.
	tokens map[string]string

	// places maps server IDs to stored place wire maps.
	places map[int64]map[string]any

	// binaries maps "{sid}/{key}" to uploaded bytes.
	binaries map[string][]byte

	// nextSID is the next server ID to assign.
	nextSID int64

	// mu provides mutual exclusion.
	mu sync.Mutex
}

// envelope mirrors the wire envelope returned by every API call.
type envelope struct {
	Status  string `json:"status"`
	Result  any    `json:"result,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeSuccess(w http.ResponseWriter, result any) {
	data := runtimex.Try1(json.Marshal(envelope{Status: "success", Result: result}))
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, code, message string) {
	data := runtimex.Try1(json.Marshal(envelope{Status: "error", Code: code, Message: message}))
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

// AddPlace stores a place wire map and returns its server ID.
func (h *GeocoreBackend) AddPlace(place map[string]any) int64 {
	defer h.mu.Unlock()
	h.mu.Lock()
	sid := h.assignSIDLocked()
	place["sid"] = sid
	h.places[sid] = place
	return sid
}

func (h *GeocoreBackend) assignSIDLocked() int64 {
	if h.places == nil {
		h.places = make(map[int64]map[string]any)
	}
	h.nextSID++
	return h.nextSID
}

// NewMux constructs an [*http.ServeMux] configured with the correct routing.
func (h *GeocoreBackend) NewMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("POST /auth", h.handleLogin())
	mux.Handle("POST /register", h.handleRegister())
	mux.Handle("GET /places", h.withAuthentication(h.handlePlacesList()))
	mux.Handle("GET /places/search/within/rect", h.withAuthentication(h.handlePlacesList()))
	mux.Handle("GET /places/search/nearest", h.withAuthentication(h.handlePlacesList()))
	mux.Handle("GET /places/{sid}", h.withAuthentication(h.handlePlaceGet()))
	mux.Handle("POST /places", h.withAuthentication(h.handlePlaceSave()))
	mux.Handle("POST /places/{sid}", h.withAuthentication(h.handlePlaceSave()))
	mux.Handle("DELETE /places/{sid}", h.withAuthentication(h.handlePlaceDelete()))
	mux.Handle("GET /objs/{sid}/bins", h.withAuthentication(h.handleBinariesList()))
	mux.Handle("GET /objs/{sid}/bins/{key}/url", h.withAuthentication(h.handleBinaryURL()))
	mux.Handle("POST /objs/{sid}/bins/{key}", h.withAuthentication(h.handleBinaryUpload()))
	return mux
}

func (h *GeocoreBackend) handleRegister() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.RegisterCalls.Add(1)

		rawreqbody := runtimex.Try1(io.ReadAll(r.Body))
		var user map[string]any
		runtimex.Try0(json.Unmarshal(rawreqbody, &user))
		userID, _ := user["id"].(string)
		password, _ := user["password"].(string)
		if userID == "" || password == "" {
			writeError(w, "Auth.0003", "missing id or password")
			return
		}

		defer h.mu.Unlock()
		h.mu.Lock()
		if h.logins == nil {
			h.logins = make(map[string]*GeocoreBackendUserRecord)
		}
		h.logins[userID] = &GeocoreBackendUserRecord{Password: password}

		sid := h.assignSIDLocked()
		delete(user, "password")
		user["sid"] = sid
		writeSuccess(w, user)
	})
}

func (h *GeocoreBackend) handleLogin() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.LoginCalls.Add(1)

		rawreqbody := runtimex.Try1(io.ReadAll(r.Body))
		var creds struct {
			ID        string `json:"id"`
			Password  string `json:"password"`
			ProjectID string `json:"project_id"`
		}
		runtimex.Try0(json.Unmarshal(rawreqbody, &creds))

		if h.ProjectID != "" && creds.ProjectID != h.ProjectID {
			writeError(w, "Auth.0004", "unknown project")
			return
		}

		defer h.mu.Unlock()
		h.mu.Lock()
		record := h.logins[creds.ID]
		if record == nil {
			writeError(w, "Auth.0001", "user not found")
			return
		}
		if record.Password != creds.Password {
			writeError(w, "Auth.0002", "wrong password")
			return
		}
		record.Token = uuid.NewString()
		if h.tokens == nil {
			h.tokens = make(map[string]string)
		}
		h.tokens[record.Token] = creds.ID
		writeSuccess(w, map[string]any{"token": record.Token})
	})
}

func (h *GeocoreBackend) withAuthentication(child http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(httpx.TokenHeaderName)
		h.mu.Lock()
		_, good := h.tokens[token]
		h.mu.Unlock()
		if !good {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		child.ServeHTTP(w, r)
	})
}

func (h *GeocoreBackend) handlePlacesList() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer h.mu.Unlock()
		h.mu.Lock()
		places := []map[string]any{}
		for _, place := range h.places {
			places = append(places, place)
		}
		writeSuccess(w, places)
	})
}

func (h *GeocoreBackend) handlePlaceGet() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer h.mu.Unlock()
		h.mu.Lock()
		var sid int64
		_, _ = fmt.Sscanf(r.PathValue("sid"), "%d", &sid)
		place := h.places[sid]
		if place == nil {
			writeError(w, "Data.0001", "no such place")
			return
		}
		writeSuccess(w, place)
	})
}

func (h *GeocoreBackend) handlePlaceSave() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawreqbody := runtimex.Try1(io.ReadAll(r.Body))
		var place map[string]any
		runtimex.Try0(json.Unmarshal(rawreqbody, &place))

		defer h.mu.Unlock()
		h.mu.Lock()
		var sid int64
		if _, err := fmt.Sscanf(r.PathValue("sid"), "%d", &sid); err != nil || sid <= 0 {
			sid = h.assignSIDLocked()
		}
		place["sid"] = sid

		// surface pending tag names the way the real backend does
		if tagNames := r.URL.Query().Get("tag_names"); tagNames != "" {
			place["tags"] = []map[string]any{{"name": tagNames, "type": "USER_TAG"}}
		}

		if h.places == nil {
			h.places = make(map[int64]map[string]any)
		}
		h.places[sid] = place
		writeSuccess(w, place)
	})
}

func (h *GeocoreBackend) handlePlaceDelete() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer h.mu.Unlock()
		h.mu.Lock()
		var sid int64
		_, _ = fmt.Sscanf(r.PathValue("sid"), "%d", &sid)
		place := h.places[sid]
		if place == nil {
			writeError(w, "Data.0001", "no such place")
			return
		}
		delete(h.places, sid)
		writeSuccess(w, place)
	})
}

func (h *GeocoreBackend) handleBinaryUpload() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		runtimex.Try0(r.ParseMultipartForm(1 << 22))
		file, _, err := r.FormFile("data")
		runtimex.Try0(err)
		defer file.Close()
		data := runtimex.Try1(io.ReadAll(file))

		defer h.mu.Unlock()
		h.mu.Lock()
		if h.binaries == nil {
			h.binaries = make(map[string][]byte)
		}
		key := r.PathValue("sid") + "/" + r.PathValue("key")
		h.binaries[key] = data

		// the real backend acknowledges uploads with the bare key
		writeSuccess(w, r.PathValue("key"))
	})
}

func (h *GeocoreBackend) handleBinariesList() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer h.mu.Unlock()
		h.mu.Lock()
		prefix := r.PathValue("sid") + "/"
		keys := []string{}
		for key := range h.binaries {
			if len(key) > len(prefix) && key[:len(prefix)] == prefix {
				keys = append(keys, key[len(prefix):])
			}
		}
		writeSuccess(w, keys)
	})
}

func (h *GeocoreBackend) handleBinaryURL() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer h.mu.Unlock()
		h.mu.Lock()
		key := r.PathValue("sid") + "/" + r.PathValue("key")
		data, found := h.binaries[key]
		if !found {
			writeError(w, "Data.0002", "no such binary")
			return
		}
		writeSuccess(w, map[string]any{
			"key": r.PathValue("key"),
			"url": "https://storage.example.com/" + key,
			"metadata": map[string]any{
				"contentLength": len(data),
				"contentType":   "application/octet-stream",
				"lastModified":  "2015/04/23 10:00:00",
			},
		})
	})
}
