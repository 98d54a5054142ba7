// file: internals/features/finance/bills/controller/bill_generate_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"plazaku_backend/internals/features/finance/bills/dto"
	"plazaku_backend/internals/features/finance/bills/model"
	"plazaku_backend/internals/features/finance/bills/service"
	businessModel "plazaku_backend/internals/features/plaza/businesses/model"
	helper "plazaku_backend/internals/helpers"
)

// -----------------------------------------
// Generate (POST /bills/generate) — batch satu periode utk satu jenis.
// Cohort default: semua business aktif yang flag kelolaannya cocok dengan
// jenis tagihan; bisa dipersempit lewat business_ids.
// Kegagalan per business dicatat di result, tidak membatalkan sisanya.
// -----------------------------------------
func (h *BillHandler) Generate(c *fiber.Ctx) error {
	var in dto.BillGenerateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := h.Validate.Struct(in); err != nil {
		return helper.JsonErrorCode(c, fiber.StatusUnprocessableEntity, helper.ErrCodeValidation, err.Error())
	}
	kind := model.BillKind(in.BillKind)

	q := h.DB.Model(&businessModel.BusinessModel{}).Where("business_is_active = TRUE")
	switch kind {
	case model.BillKindRent, model.BillKindCombined:
		q = q.Where("business_manage_rent = TRUE")
	case model.BillKindMaintenance:
		q = q.Where("business_manage_maintenance = TRUE")
	case model.BillKindElectricity:
		q = q.Where("business_manage_electricity = TRUE")
	case model.BillKindGas:
		q = q.Where("business_manage_gas = TRUE")
	}
	if len(in.BusinessIDs) > 0 {
		q = q.Where("business_id IN ?", in.BusinessIDs)
	}

	var cohort []businessModel.BusinessModel
	if err := q.Order("business_floor_number ASC, business_shop_number ASC").Find(&cohort).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	res := service.GenerateAll(c.Context(), service.NewGormGenerateStore(h.DB), cohort, service.GenerateInput{
		Kind:      kind,
		Month:     in.BillMonth,
		Year:      in.BillYear,
		IssueDate: time.Now(),
		DueDate:   in.DueDate,
		TermIDs:   in.TermIDs,
	})
	return helper.JsonOK(c, "generate selesai", res)
}
