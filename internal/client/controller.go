package client

import (
	"encoding/json"
	"net/http"
	"strconv"

	"despensa/internal/domain"
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

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in ClientInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		c.writeError(w, invalidBodyError())
		return
	}

	if err := validateClientInput(in); err != nil {
		c.writeError(w, err)
		return
	}

	created, err := c.service.Create(r.Context(), domain.Client{Name: in.Name, Phone: in.Phone})
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.writeJSON(w, http.StatusCreated, toClientDTO(*created))
}

func (c *Controller) HandleList(w http.ResponseWriter, r *http.Request) {
	clients, err := c.service.List(r.Context())
	if err != nil {
		c.writeError(w, err)
		return
	}

	dtos := make([]ClientDTO, 0, len(clients))
	for _, cl := range clients {
		dtos = append(dtos, toClientDTO(cl))
	}

	c.writeJSON(w, http.StatusOK, dtos)
}

func (c *Controller) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseClientID(r, "id")
	if err != nil {
		c.writeError(w, err)
		return
	}

	cl, addresses, err := c.service.Get(r.Context(), id)
	if err != nil {
		c.writeError(w, err)
		return
	}

	addressDTOs := make([]AddressDTO, 0, len(addresses))
	for _, a := range addresses {
		addressDTOs = append(addressDTOs, toAddressDTO(a))
	}

	c.writeJSON(w, http.StatusOK, ClientDetailDTO{
		ID:        cl.ID,
		Name:      cl.Name,
		Phone:     cl.Phone,
		Addresses: addressDTOs,
	})
}

func (c *Controller) HandleAddAddress(w http.ResponseWriter, r *http.Request) {
	clientID, err := parseClientID(r, "clientId")
	if err != nil {
		c.writeError(w, err)
		return
	}

	var in AddressInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		c.writeError(w, invalidBodyError())
		return
	}

	if err := validateAddressInput(in); err != nil {
		c.writeError(w, err)
		return
	}

	created, err := c.service.AddAddress(r.Context(), clientID, toAddressDomain(in))
	if err != nil {
		c.writeError(w, err)
		return
	}

	c.writeJSON(w, http.StatusCreated, toAddressDTO(*created))
}

func (c *Controller) HandleListAddresses(w http.ResponseWriter, r *http.Request) {
	clientID, err := parseClientID(r, "clientId")
	if err != nil {
		c.writeError(w, err)
		return
	}

	addresses, err := c.service.ListAddresses(r.Context(), clientID)
	if err != nil {
		c.writeError(w, err)
		return
	}

	dtos := make([]AddressDTO, 0, len(addresses))
	for _, a := range addresses {
		dtos = append(dtos, toAddressDTO(a))
	}

	c.writeJSON(w, http.StatusOK, dtos)
}

func parseClientID(r *http.Request, param string) (int, error) {
	idStr := chi.URLParam(r, param)
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid "+param, apperrors.ValidationDetail{
			Field:   param,
			Message: param + " must be a positive integer",
		})
	}
	return id, nil
}

func validateClientInput(in ClientInput) error {
	var details []apperrors.ValidationDetail

	if in.Name == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	}

	if in.Phone == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "phone",
			Message: "phone is required",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func validateAddressInput(in AddressInput) error {
	var details []apperrors.ValidationDetail

	required := []struct {
		field string
		value string
	}{
		{"street", in.Street},
		{"number", in.Number},
		{"neighborhood", in.Neighborhood},
		{"city", in.City},
		{"zip_code", in.ZipCode},
		{"nickname", in.Nickname},
	}

	for _, f := range required {
		if f.value == "" {
			details = append(details, apperrors.ValidationDetail{
				Field:   f.field,
				Message: f.field + " is required",
			})
		}
	}

	if len(in.State) != 2 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "state",
			Message: "state must be a 2-letter code",
		})
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
