package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/flavorrush/flavorrush-backend/internal/interface/presenter"
	"github.com/flavorrush/flavorrush-backend/internal/usecase"
)

// RestaurantHandler adapts HTTP requests to use case calls.
type RestaurantHandler struct {
	usecase   usecase.RestaurantUsecase
	presenter *presenter.RestaurantPresenter
}

func NewRestaurantHandler(usecase usecase.RestaurantUsecase, presenter *presenter.RestaurantPresenter) *RestaurantHandler {
	return &RestaurantHandler{usecase: usecase, presenter: presenter}
}

func (h *RestaurantHandler) ListOrCreate(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		restaurants, err := h.usecase.List(r.Context())
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, h.presenter.ToList(restaurants))
	case http.MethodPost:
		var input usecase.CreateRestaurantInput
		if err := decodeJSON(r, &input); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		restaurant, err := h.usecase.Create(r.Context(), input)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusCreated, h.presenter.ToResponse(restaurant))
	default:
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	}
}

func (h *RestaurantHandler) GetUpdateDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r.URL.Path)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid restaurant id"})
		return
	}

	switch r.Method {
	case http.MethodGet:
		restaurant, err := h.usecase.GetByID(r.Context(), id)
		if err != nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, h.presenter.ToResponse(restaurant))
	case http.MethodPatch:
		var input usecase.UpdateRestaurantInput
		if err := decodeJSON(r, &input); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		restaurant, err := h.usecase.Update(r.Context(), id, input)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, h.presenter.ToResponse(restaurant))
	case http.MethodDelete:
		if err := h.usecase.Delete(r.Context(), id); err != nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, messageResponse{Message: "deleted"})
	default:
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.New("invalid json body")
	}
	return nil
}

func parseID(path string) (int64, error) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 2 {
		return 0, errors.New("missing id")
	}
	return strconv.ParseInt(segments[len(segments)-1], 10, 64)
}
