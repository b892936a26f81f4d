package httpHandler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"positioning-server/entities"
	"positioning-server/repositories"
	"positioning-server/validation"
)

type BeaconHandler struct {
	beacons      repositories.BeaconRepository
	measurements repositories.MeasurementRepository
}

func NewBeaconHandler(beacons repositories.BeaconRepository, measurements repositories.MeasurementRepository) *BeaconHandler {
	return &BeaconHandler{
		beacons:      beacons,
		measurements: measurements,
	}
}

var beaconCreateRules = validation.Rules{
	validation.Field("beaconAddress").Required(),
	validation.Field("txPower").Optional().Int(),
	validation.Field("coordinates").Optional().Object(
		validation.Field("x").Required().Int(),
		validation.Field("y").Required().Int(),
	),
}

// the address comes from the path on PUT, never from the body
var beaconUpsertRules = validation.Rules{
	validation.Field("txPower").Optional().Int(),
	validation.Field("coordinates").Optional().Object(
		validation.Field("x").Required().Int(),
		validation.Field("y").Required().Int(),
	),
}

// GetAllBeacons handles GET /api/v1/beacons
func (h *BeaconHandler) GetAllBeacons(c *gin.Context) {
	beacons, err := h.beacons.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, beacons)
}

// GetBeacon handles GET /api/v1/beacons/:address
// An unknown address yields an empty array, not a 404.
func (h *BeaconHandler) GetBeacon(c *gin.Context) {
	beacons, err := h.beacons.GetByKey(c.Param("address"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, beacons)
}

// CreateBeacon handles POST /api/v1/beacons
func (h *BeaconHandler) CreateBeacon(c *gin.Context) {
	var beacon entities.Beacon
	if !bindValidated(c, beaconCreateRules, &beacon) {
		return
	}

	if err := h.beacons.Create(&beacon); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			c.String(http.StatusConflict, "Beacon with beaconAddress '%s' already exists", beacon.BeaconAddress)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, beacon)
}

// UpsertBeacon handles PUT /api/v1/beacons/:address
// 200 when the address already existed, 201 when the write created it.
func (h *BeaconHandler) UpsertBeacon(c *gin.Context) {
	var beacon entities.Beacon
	if !bindValidated(c, beaconUpsertRules, &beacon) {
		return
	}
	beacon.BeaconAddress = c.Param("address")

	existed, err := h.beacons.Upsert(&beacon)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if existed {
		c.JSON(http.StatusOK, beacon)
		return
	}
	c.JSON(http.StatusCreated, beacon)
}

// DeleteAllBeacons handles DELETE /api/v1/beacons
func (h *BeaconHandler) DeleteAllBeacons(c *gin.Context) {
	if err := h.beacons.DeleteAll(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteBeacon handles DELETE /api/v1/beacons/:address — idempotent, 204
// whether or not the beacon existed.
func (h *BeaconHandler) DeleteBeacon(c *gin.Context) {
	if err := h.beacons.DeleteByKey(c.Param("address")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
