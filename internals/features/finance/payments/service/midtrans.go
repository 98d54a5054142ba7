// file: internals/features/finance/payments/service/midtrans.go
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	billModel "plazaku_backend/internals/features/finance/bills/model"
	businessModel "plazaku_backend/internals/features/plaza/businesses/model"
)

// =======================================================
// MIDTRANS (Snap) — pembayaran tagihan via gateway
// =======================================================

var snapClient snap.Client

// InitMidtrans dipanggil sekali dari main saat boot.
// TODO: pindah ke midtrans.Production lewat env saat go-live.
func InitMidtrans(serverKey string) {
	snapClient.New(serverKey, midtrans.Sandbox)
}

// BuildOrderID: "PLZ-{bill_id}-{unix}". Suffix waktu supaya tenant bisa
// bikin ulang transaksi yang expired tanpa bentrok order id di Midtrans.
func BuildOrderID(billID string) string {
	return fmt.Sprintf("PLZ-%s-%d", billID, time.Now().Unix())
}

// ParseOrderID mengambil bill_id dari order id bikinan BuildOrderID.
func ParseOrderID(orderID string) (string, bool) {
	if !strings.HasPrefix(orderID, "PLZ-") {
		return "", false
	}
	rest := orderID[len("PLZ-"):]
	idx := strings.LastIndex(rest, "-")
	if idx <= 0 {
		return "", false
	}
	return rest[:idx], true
}

// GenerateSnapToken bikin transaksi Snap untuk satu tagihan.
func GenerateSnapToken(bill billModel.BillModel, biz businessModel.BusinessModel) (string, string, error) {
	orderID := BuildOrderID(bill.BillID.String())

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(bill.BillTotalIDR),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: biz.BusinessOwnerName,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    bill.BillNumber,
				Name:  fmt.Sprintf("Tagihan %s %02d/%04d - %s", bill.BillKind, bill.BillMonth, bill.BillYear, biz.BusinessName),
				Price: int64(bill.BillTotalIDR),
				Qty:   1,
			},
		},
	}

	res, err := snapClient.CreateTransaction(req)
	if err != nil {
		return "", "", fmt.Errorf("midtrans create transaction: %s", err.GetMessage())
	}
	return res.Token, orderID, nil
}
