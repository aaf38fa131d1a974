package product

import (
	"encoding/json"
	"net/http"
	"strconv"

	apperrors "despensa/internal/errors"
	"despensa/internal/rest"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Controller struct {
	service Service
	logger  *zap.Logger
}

func NewController(service Service, logger *zap.Logger) *Controller {
	return &Controller{
		service: service,
		logger:  logger,
	}
}

// HandleCreate accepts either a single product object or an array of them,
// mirroring the catalog's bulk-create behavior.
func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		c.writeError(w, invalidBodyError())
		return
	}

	var inputs []ProductInput
	isMany := true
	if err := json.Unmarshal(raw, &inputs); err != nil {
		var single ProductInput
		if err := json.Unmarshal(raw, &single); err != nil {
			c.writeError(w, invalidBodyError())
			return
		}
		inputs = []ProductInput{single}
		isMany = false
	}

	if err := validateInputs(inputs); err != nil {
		c.writeError(w, err)
		return
	}

	created := make([]ProductDTO, 0, len(inputs))
	for _, in := range inputs {
		p, err := c.service.Create(r.Context(), toDomain(in))
		if err != nil {
			c.writeError(w, err)
			return
		}
		created = append(created, toDTO(*p))
	}

	if isMany {
		c.writeJSON(w, http.StatusCreated, created)
		return
	}
	c.writeJSON(w, http.StatusCreated, created[0])
}

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.List(r.Context())
	if err != nil {
		c.writeError(w, err)
		return
	}

	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toDTO(p))
	}

	c.writeJSON(w, http.StatusOK, dtos)
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.writeError(w, err)
		return
	}

	p, err := c.service.Get(r.Context(), id)
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toDTO(*p))
}

func (c *Controller) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.writeError(w, err)
		return
	}

	var in ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		c.writeError(w, invalidBodyError())
		return
	}

	if err := validateInputs([]ProductInput{in}); err != nil {
		c.writeError(w, err)
		return
	}

	updated := toDomain(in)
	updated.ID = id

	p, err := c.service.Update(r.Context(), updated)
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.writeJSON(w, http.StatusOK, toDTO(*p))
}

func (c *Controller) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		c.writeError(w, err)
		return
	}

	if err := c.service.Delete(r.Context(), id); err != nil {
		c.writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseID(r *http.Request) (int, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", apperrors.ValidationDetail{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}
	return id, nil
}

func validateInputs(inputs []ProductInput) error {
	var details []apperrors.ValidationDetail

	for idx, in := range inputs {
		prefix := ""
		if len(inputs) > 1 {
			prefix = "[" + strconv.Itoa(idx) + "]."
		}

		if in.Name == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   prefix + "name",
				Message: "name is required",
			})
		}

		for pidx, price := range in.Prices {
			field := prefix + "prices[" + strconv.Itoa(pidx) + "]"
			if price.SizeML <= 0 {
				details = append(details, apperrors.ValidationDetail{
					Field:   field + ".size_ml",
					Message: "size_ml must be a positive integer",
				})
			}
			if price.PriceInCents < 0 {
				details = append(details, apperrors.ValidationDetail{
					Field:   field + ".price_in_cents",
					Message: "price_in_cents must be non-negative",
				})
			}
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func invalidBodyError() error {
	return apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
		Field:   "body",
		Message: "request body must be valid JSON",
	})
}

func (c *Controller) writeError(w http.ResponseWriter, err error) {
	if rest.IsDomainError(err) {
		c.logger.Warn("request rejected", zap.Error(err))
	} else {
		c.logger.Error("unexpected error", zap.Error(err))
	}

	if writeErr := rest.WriteError(w, err); writeErr != nil {
		c.logger.Error("failed to encode error response", zap.Error(writeErr))
	}
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	if err := rest.WriteJSON(w, status, data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
