package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/ambulance_dispatch_system/internal/config"
	"github.com/shenikar/ambulance_dispatch_system/internal/ledger"
	"github.com/shenikar/ambulance_dispatch_system/internal/models"
	"github.com/shenikar/ambulance_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Коды ошибок подбора, по которым клиент отличает их друг от друга
const (
	codeNoHospitalsFound     = "NO_HOSPITALS_FOUND"
	codeNoAvailableAmbulance = "NO_AVAILABLE_AMBULANCE"
	codeAmbulanceConflict    = "AMBULANCE_CONFLICT"
	codeLedgerUnavailable    = "LEDGER_UNAVAILABLE"
	codeLedgerRejected       = "LEDGER_REJECTED"
	codeStoreWriteFailed     = "STORE_WRITE_FAILED"
)

type Handler struct {
	dispatchService service.DispatchService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(dispatchService service.DispatchService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		dispatchService: dispatchService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// writeError переводит доменную ошибку в HTTP-статус
func (h *Handler) writeError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrNoHospitalsFound):
		log.WithError(err).Warn("No hospitals found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no hospitals found", Code: codeNoHospitalsFound})
	case errors.Is(err, models.ErrNoAvailableAmbulance):
		log.WithError(err).Warn("No available ambulance")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no available ambulances found", Code: codeNoAvailableAmbulance})
	case errors.Is(err, models.ErrRecordNotFound), errors.Is(err, ledger.ErrBlockNotFound):
		log.WithError(err).Warn("Record not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, models.ErrAmbulanceConflict):
		log.WithError(err).Warn("Ambulance conflict")
		c.JSON(http.StatusConflict, ErrorResponse{Error: "ambulance was assigned concurrently", Code: codeAmbulanceConflict})
	case errors.Is(err, ledger.ErrLedgerUnavailable):
		log.WithError(err).Error("Ledger unavailable")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "ledger unavailable", Code: codeLedgerUnavailable})
	case errors.Is(err, ledger.ErrLedgerRejected):
		log.WithError(err).Error("Ledger rejected submission")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "ledger rejected submission", Code: codeLedgerRejected})
	case errors.Is(err, models.ErrStoreWriteFailed):
		log.WithError(err).Error("Store write failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "store write failed", Code: codeStoreWriteFailed})
	default:
		log.WithError(err).Error("Unexpected service error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// bindAndValidate разбирает JSON тела и проверяет DTO; при ошибке уже записан ответ 400
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// @Summary Dispatch an ambulance
// @Description Select the nearest hospital with an available ambulance, anchor the assignment in the ledger and persist it.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Param request body DispatchRequest true "Emergency request"
// @Success 201 {object} models.EmergencyResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 404 {object} ErrorResponse "No hospitals or no available ambulance"
// @Failure 409 {object} ErrorResponse "Ambulance assigned concurrently"
// @Failure 500 {object} ErrorResponse "Store write failed"
// @Failure 502 {object} ErrorResponse "Ledger rejected submission"
// @Failure 503 {object} ErrorResponse "Ledger unavailable"
// @Router /emergencies/dispatch [post]
func (h *Handler) dispatch(c *gin.Context) {
	var input DispatchRequest
	log := h.logger.WithField("method", "dispatch")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	response, err := h.dispatchService.Dispatch(c.Request.Context(), DTOToEmergencyRequest(input))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, response)
}

// @Summary Get emergency response
// @Description Get the stored response for an emergency request.
// @Tags Emergencies
// @Produce json
// @Param request_id path string true "Request ID"
// @Success 200 {object} models.EmergencyResponse
// @Failure 404 {object} ErrorResponse "Response not found"
// @Router /emergencies/{request_id}/response [get]
func (h *Handler) getResponse(c *gin.Context) {
	requestID := c.Param("request_id")
	log := h.logger.WithField("method", "getResponse").WithField("request_id", requestID)

	response, err := h.dispatchService.GetResponse(c.Request.Context(), requestID)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Find nearest hospitals
// @Description Rank hospitals by great-circle distance from a point.
// @Tags Hospitals
// @Produce json
// @Param latitude query number true "Latitude"
// @Param longitude query number true "Longitude"
// @Param limit query int false "Maximum number of hospitals" default(5)
// @Success 200 {array} models.HospitalWithDistance
// @Failure 400 {object} ErrorResponse "Invalid coordinates"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /hospitals/nearest [get]
func (h *Handler) nearestHospitals(c *gin.Context) {
	log := h.logger.WithField("method", "nearestHospitals")

	lat, errLat := strconv.ParseFloat(c.Query("latitude"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("longitude"), 64)
	if errLat != nil || errLon != nil ||
		h.validate.Var(lat, "latitude") != nil || h.validate.Var(lon, "longitude") != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid latitude or longitude"})
		return
	}

	limit := h.cfg.NearestHospitalLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
			return
		}
		limit = n
	}

	hospitals, err := h.dispatchService.NearestHospitals(c.Request.Context(), models.Location{Latitude: lat, Longitude: lon}, limit)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, hospitals)
}

// @Summary List available ambulances
// @Description List ambulances of a hospital whose status is Available.
// @Tags Hospitals
// @Produce json
// @Param id path string true "Hospital ID"
// @Success 200 {array} models.Ambulance
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /hospitals/{id}/ambulances/available [get]
func (h *Handler) availableAmbulances(c *gin.Context) {
	hospitalID := c.Param("id")
	log := h.logger.WithField("method", "availableAmbulances").WithField("hospital_id", hospitalID)

	ambulances, err := h.dispatchService.AvailableAmbulances(c.Request.Context(), hospitalID)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ambulances)
}

// @Summary Register a hospital
// @Description Anchor a hospital in the ledger and store it.
// @Tags Hospitals
// @Accept json
// @Produce json
// @Param hospital body RegisterHospitalRequest true "Hospital registration request"
// @Success 201 {object} RegistrationResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 500 {object} ErrorResponse "Store write failed"
// @Failure 502 {object} ErrorResponse "Ledger rejected submission"
// @Failure 503 {object} ErrorResponse "Ledger unavailable"
// @Router /hospitals [post]
func (h *Handler) registerHospital(c *gin.Context) {
	var input RegisterHospitalRequest
	log := h.logger.WithField("method", "registerHospital")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	hospital := DTOToHospital(input)
	blockID, err := h.dispatchService.RegisterHospital(c.Request.Context(), hospital)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, RegistrationResponse{ID: hospital.HospitalID, BlockID: blockID})
}

// @Summary List hospitals
// @Description List all registered hospitals.
// @Tags Hospitals
// @Produce json
// @Success 200 {array} models.Hospital
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /hospitals [get]
func (h *Handler) listHospitals(c *gin.Context) {
	log := h.logger.WithField("method", "listHospitals")

	hospitals, err := h.dispatchService.ListHospitals(c.Request.Context())
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, hospitals)
}

// @Summary Register an ambulance
// @Description Anchor an ambulance in the ledger and store it.
// @Tags Ambulances
// @Accept json
// @Produce json
// @Param ambulance body RegisterAmbulanceRequest true "Ambulance registration request"
// @Success 201 {object} RegistrationResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 500 {object} ErrorResponse "Store write failed"
// @Failure 502 {object} ErrorResponse "Ledger rejected submission"
// @Failure 503 {object} ErrorResponse "Ledger unavailable"
// @Router /ambulances [post]
func (h *Handler) registerAmbulance(c *gin.Context) {
	var input RegisterAmbulanceRequest
	log := h.logger.WithField("method", "registerAmbulance")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	ambulance := DTOToAmbulance(input)
	blockID, err := h.dispatchService.RegisterAmbulance(c.Request.Context(), ambulance)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, RegistrationResponse{ID: ambulance.AmbulanceID, BlockID: blockID})
}

// @Summary Anchor a record
// @Description Append a tagged JSON payload to this node's ledger.
// @Tags Ledger
// @Accept json
// @Produce json
// @Param record body AnchorRequest true "Tagged payload"
// @Success 201 {object} AnchorResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or rejected payload"
// @Failure 503 {object} ErrorResponse "Ledger unavailable"
// @Router /ledger/blocks [post]
func (h *Handler) anchorRecord(c *gin.Context) {
	var input AnchorRequest
	log := h.logger.WithField("method", "anchorRecord")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	anchorID, err := h.dispatchService.AnchorRecord(c.Request.Context(), input.Tag, input.Payload)
	if err != nil {
		if errors.Is(err, ledger.ErrLedgerRejected) {
			// Для удалённого клиента отказ - ошибка его запроса
			log.WithError(err).Warn("Rejected ledger submission")
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "ledger rejected submission", Code: codeLedgerRejected})
			return
		}
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, AnchorResponse{AnchorID: anchorID})
}

// @Summary Get ledger block
// @Description Get an anchored block by its anchor ID.
// @Tags Ledger
// @Produce json
// @Param anchor_id path string true "Anchor ID"
// @Success 200 {object} ledger.Block
// @Failure 404 {object} ErrorResponse "Block not found"
// @Failure 503 {object} ErrorResponse "Ledger unavailable"
// @Router /ledger/blocks/{anchor_id} [get]
func (h *Handler) getLedgerBlock(c *gin.Context) {
	anchorID := c.Param("anchor_id")
	log := h.logger.WithField("method", "getLedgerBlock").WithField("anchor_id", anchorID)

	block, err := h.dispatchService.GetLedgerBlock(c.Request.Context(), anchorID)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, block)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
