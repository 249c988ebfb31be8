package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"trackzone_backend/internals/features/geofence/dto"
	"trackzone_backend/internals/features/geofence/model"
	helper "trackzone_backend/internals/helpers"
)

type GeofenceController struct {
	DB *gorm.DB
}

func NewGeofenceController(db *gorm.DB) *GeofenceController {
	return &GeofenceController{DB: db}
}

var validate = validator.New()

// POST /api/a/geofence
func (ctrl *GeofenceController) Create(c *fiber.Ctx) error {
	var req dto.CreateGeofenceZoneRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	zone := model.GeofenceZoneModel{
		GeofenceZoneName:     req.Name,
		GeofenceZoneLat:      req.Lat,
		GeofenceZoneLon:      req.Lon,
		GeofenceZoneRadiusM:  req.RadiusM,
		GeofenceZoneIsActive: true,
	}
	if err := ctrl.DB.Create(&zone).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama zona sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Zona geofence berhasil dibuat", dto.ToGeofenceZoneResponse(&zone))
}

// GET /api/a/geofence
func (ctrl *GeofenceController) List(c *fiber.Ctx) error {
	var zones []model.GeofenceZoneModel
	if err := ctrl.DB.Order("geofence_zone_name ASC").Find(&zones).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	out := make([]dto.GeofenceZoneResponse, 0, len(zones))
	for i := range zones {
		out = append(out, dto.ToGeofenceZoneResponse(&zones[i]))
	}
	return helper.JsonOK(c, "Daftar zona geofence", out)
}

// PUT /api/a/geofence/:id
func (ctrl *GeofenceController) Update(c *fiber.Ctx) error {
	zone, err := ctrl.findByID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Zona geofence tidak ditemukan")
	}

	var req dto.UpdateGeofenceZoneRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["geofence_zone_name"] = *req.Name
	}
	if req.Lat != nil {
		updates["geofence_zone_lat"] = *req.Lat
	}
	if req.Lon != nil {
		updates["geofence_zone_lon"] = *req.Lon
	}
	if req.RadiusM != nil {
		updates["geofence_zone_radius_m"] = *req.RadiusM
	}
	if req.IsActive != nil {
		updates["geofence_zone_is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	if err := ctrl.DB.Model(zone).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama zona sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Zona geofence berhasil diperbarui", dto.ToGeofenceZoneResponse(zone))
}

// DELETE /api/a/geofence/:id
func (ctrl *GeofenceController) Delete(c *fiber.Ctx) error {
	zone, err := ctrl.findByID(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Zona geofence tidak ditemukan")
	}
	if err := ctrl.DB.Delete(zone).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Zona geofence berhasil dihapus", fiber.Map{"id": zone.GeofenceZoneID})
}

func (ctrl *GeofenceController) findByID(raw string) (*model.GeofenceZoneModel, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	var zone model.GeofenceZoneModel
	if err := ctrl.DB.Where("geofence_zone_id = ?", id).First(&zone).Error; err != nil {
		return nil, err
	}
	return &zone, nil
}
