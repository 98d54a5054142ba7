// file: internals/features/finance/payments/service/webhook.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	billModel "plazaku_backend/internals/features/finance/bills/model"
	billService "plazaku_backend/internals/features/finance/bills/service"
	"plazaku_backend/internals/features/finance/payments/model"
)

// =======================================================
// WEBHOOK MIDTRANS — notifikasi status transaksi
// =======================================================

// MidtransNotification = subset field notifikasi yang kita pakai.
type MidtransNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
	GrossAmount       string `json:"gross_amount"`
}

// IsSettled: settlement, atau capture yang lolos fraud check.
func (n MidtransNotification) IsSettled() bool {
	switch n.TransactionStatus {
	case "settlement":
		return true
	case "capture":
		return n.FraudStatus == "" || n.FraudStatus == "accept"
	default:
		return false
	}
}

// ProcessNotification: log event dulu (selalu, apa pun hasilnya), lalu kalau
// settled → tandai bill lunas via jalur lifecycle yang sama dengan mark-paid
// manual. Replay notifikasi utk bill yang sudah paid = no-op aman.
func ProcessNotification(db *gorm.DB, n MidtransNotification, rawPayload []byte) error {
	event := model.PaymentGatewayEventModel{
		GatewayEventOrderID: &n.OrderID,
		GatewayEventType:    &n.TransactionStatus,
		GatewayEventPayload: datatypes.JSON(rawPayload),
		GatewayEventStatus:  model.GatewayEventStatusReceived,
	}
	if err := db.Create(&event).Error; err != nil {
		return err
	}

	finish := func(status model.GatewayEventStatus, procErr error) error {
		now := time.Now()
		event.GatewayEventStatus = status
		event.GatewayEventProcessedAt = &now
		if procErr != nil {
			msg := procErr.Error()
			event.GatewayEventError = &msg
		}
		if err := db.Save(&event).Error; err != nil {
			return err
		}
		return procErr
	}

	if !n.IsSettled() {
		return finish(model.GatewayEventStatusSuccess, nil)
	}

	rawBillID, ok := ParseOrderID(n.OrderID)
	if !ok {
		return finish(model.GatewayEventStatusFailed, fmt.Errorf("order id tidak dikenali: %s", n.OrderID))
	}
	billID, err := uuid.Parse(rawBillID)
	if err != nil {
		return finish(model.GatewayEventStatusFailed, fmt.Errorf("bill id tidak valid di order id: %s", n.OrderID))
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var bill billModel.BillModel
		if err := tx.First(&bill, "bill_id = ?", billID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("bill %s tidak ditemukan", billID)
			}
			return err
		}
		if bill.BillStatus == billModel.BillStatusPaid {
			return nil // replay notifikasi
		}

		// Identitas tenant → kuitansi masuk pending_approval, admin yang
		// memverifikasi settlement-nya (jalur approve biasa)
		pay, err := billService.MarkBillPaid(tx, &bill,
			model.PaymentMethodGateway,
			billService.MarkedBy{Role: "tenant"},
			nil, nil)
		if err != nil {
			return err
		}
		pay.PaymentOrderID = &n.OrderID
		if err := tx.Save(pay).Error; err != nil {
			return err
		}
		event.GatewayEventPaymentID = &pay.PaymentID
		return nil
	})
	if err != nil {
		return finish(model.GatewayEventStatusFailed, err)
	}
	return finish(model.GatewayEventStatusSuccess, nil)
}
