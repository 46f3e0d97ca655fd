package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/6Ash6/TPIS-CRM-model/internal/domain"
	"github.com/6Ash6/TPIS-CRM-model/internal/service"
	"github.com/6Ash6/TPIS-CRM-model/pkg/crmsdk"
	"github.com/6Ash6/TPIS-CRM-model/pkg/httpx"
	"github.com/6Ash6/TPIS-CRM-model/pkg/slogx"
)

// ClientsHandler handles all client record endpoints.
type ClientsHandler struct {
	ClientService *service.ClientService

	// MaxBodyBytes caps request bodies for POST/PATCH. Overflow is a 413.
	MaxBodyBytes int64
}

// HandleList handles GET /api/clients with an optional ?search= substring
// filter across name, surname and last name.
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	clients, err := h.ClientService.ListClients(r.Context(), search)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKClients(clients))
}

// HandleGet handles GET /api/clients/{id}.
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		writeError(w, r, service.ErrClientNotFound)
		return
	}

	c, err := h.ClientService.GetClient(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKClient(c))
}

// HandleCreate handles POST /api/clients. On success the response is a 201
// with a Location header pointing at the new record.
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	c, err := h.ClientService.CreateClient(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("%s/%d", APIPrefix, c.ID))
	httpx.WriteJSON(w, http.StatusCreated, toSDKClient(c))
}

// HandleUpdate handles PATCH /api/clients/{id}. The payload overwrites every
// mutable field, so it is validated as a complete record.
func (h *ClientsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		writeError(w, r, service.ErrClientNotFound)
		return
	}

	in, ok := h.decodePayload(w, r)
	if !ok {
		return
	}

	c, err := h.ClientService.UpdateClient(r.Context(), id, in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toSDKClient(c))
}

// HandleDelete handles DELETE /api/clients/{id}.
func (h *ClientsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathID(r)
	if err != nil {
		writeError(w, r, service.ErrClientNotFound)
		return
	}

	if err := h.ClientService.DeleteClient(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, struct{}{})
}

// decodePayload drains and decodes the request body into a coerced
// ClientInput. It writes the error response itself and reports success via
// the second return value.
func (h *ClientsHandler) decodePayload(w http.ResponseWriter, r *http.Request) (domain.ClientInput, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxBodyBytes)

	var body any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httpx.WriteJSON(w, http.StatusRequestEntityTooLarge, crmsdk.ErrorResponse{
				Message: "Request Entity Too Large",
			})
			return domain.ClientInput{}, false
		}

		// Unparseable bodies are not user-correctable in a structured way;
		// report generically and keep the cause in the log.
		slogx.FromContext(r.Context()).Error("failed to decode request body", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, crmsdk.ErrorResponse{
			Message: "Server Error",
		})
		return domain.ClientInput{}, false
	}

	// A parseable body that is not an object coerces like an empty one and
	// surfaces as validation errors downstream.
	raw, _ := body.(map[string]any)
	return domain.CoerceClientInput(raw), true
}

// writeError maps domain and service errors onto the response taxonomy.
// Anything unrecognised is a logged 500 with a generic body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs domain.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		httpx.WriteJSON(w, http.StatusUnprocessableEntity, crmsdk.ValidationErrorResponse{
			Errors: toSDKFieldErrors(verrs),
		})
	case errors.Is(err, service.ErrClientNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, crmsdk.ErrorResponse{
			Message: "Client Not Found",
		})
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, crmsdk.ErrorResponse{
			Message: "Server Error",
		})
	}
}

// parsePathID reads the {id} path segment. Non-numeric ids behave exactly
// like a row that does not exist.
func parsePathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func handleNotFound(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusNotFound, crmsdk.ErrorResponse{Message: "Not Found"})
}

func handleMethodNotAllowed(allow string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Allow", allow)
		httpx.WriteJSON(w, http.StatusMethodNotAllowed, crmsdk.ErrorResponse{
			Message: "Method Not Allowed",
		})
	})
}

func toSDKClient(c domain.Client) crmsdk.Client {
	contacts := make([]crmsdk.Contact, len(c.Contacts))
	for i, contact := range c.Contacts {
		contacts[i] = crmsdk.Contact{Type: contact.Type, Value: contact.Value}
	}

	return crmsdk.Client{
		ID:        c.ID,
		Name:      c.Name,
		Surname:   c.Surname,
		LastName:  c.LastName,
		Contacts:  contacts,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toSDKClients(clients []domain.Client) []crmsdk.Client {
	out := make([]crmsdk.Client, len(clients))
	for i, c := range clients {
		out[i] = toSDKClient(c)
	}
	return out
}

func toSDKFieldErrors(errs domain.ValidationErrors) []crmsdk.FieldError {
	out := make([]crmsdk.FieldError, len(errs))
	for i, fe := range errs {
		out[i] = crmsdk.FieldError{Field: fe.Field, Message: fe.Message}
	}
	return out
}
