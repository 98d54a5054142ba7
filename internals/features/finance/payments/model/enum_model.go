// file: internals/features/finance/payments/model/enum_model.go
package model

type PaymentMethod string
type PaymentStatus string
type GatewayEventStatus string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodGateway      PaymentMethod = "gateway"
	PaymentMethodOther        PaymentMethod = "other"
)

const (
	// confirmed: admin yang menandai lunas
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	// pending_approval: setoran self-service tenant, menunggu verifikasi admin
	PaymentStatusPendingApproval PaymentStatus = "pending_approval"
)

const (
	GatewayEventStatusReceived   GatewayEventStatus = "received"
	GatewayEventStatusProcessing GatewayEventStatus = "processing"
	GatewayEventStatusSuccess    GatewayEventStatus = "success"
	GatewayEventStatusFailed     GatewayEventStatus = "failed"
)
