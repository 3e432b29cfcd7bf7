package ports

// Mailer define a interface para envio de emails transacionais
type Mailer interface {
	// SendPurchaseConfirmation envia o email de confirmação de compra.
	// Falhas de envio não devem reverter a compra já persistida.
	SendPurchaseConfirmation(to, recordName string) error
}
