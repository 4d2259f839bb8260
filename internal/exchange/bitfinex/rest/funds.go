package rest

import (
	"context"
	"strings"

	"github.com/WongLynn/bitfinex-1/internal/models"
	"github.com/shopspring/decimal"
)

// WithdrawRequest covers both crypto and bank wire withdrawals. WithdrawType,
// WalletSelected and Amount are required; every other field is sent as an
// empty string when left unset. WithdrawType is lower-cased like every
// currency or method name in a signed payload.
type WithdrawRequest struct {
	WithdrawType   string
	WalletSelected models.WalletType
	Amount         decimal.Decimal

	Address       string
	PaymentID     string
	AccountName   string
	AccountNumber string
	Swift         string
	BankName      string
	BankAddress   string
	BankCity      string
	BankCountry   string
	DetailPayment string
	ExpressWire   string

	IntermediaryBankName    string
	IntermediaryBankAddress string
	IntermediaryBankCity    string
	IntermediaryBankCountry string
	IntermediaryBankAccount string
	IntermediaryBankSwift   string
}

func (r WithdrawRequest) params() map[string]any {
	return map[string]any{
		"withdraw_type":             strings.ToLower(r.WithdrawType),
		"walletselected":            string(r.WalletSelected),
		"amount":                    r.Amount.String(),
		"address":                   r.Address,
		"payment_id":                r.PaymentID,
		"account_name":              r.AccountName,
		"account_number":            r.AccountNumber,
		"swift":                     r.Swift,
		"bank_name":                 r.BankName,
		"bank_address":              r.BankAddress,
		"bank_city":                 r.BankCity,
		"bank_country":              r.BankCountry,
		"detail_payment":            r.DetailPayment,
		"expressWire":               r.ExpressWire,
		"intermediary_bank_name":    r.IntermediaryBankName,
		"intermediary_bank_address": r.IntermediaryBankAddress,
		"intermediary_bank_city":    r.IntermediaryBankCity,
		"intermediary_bank_country": r.IntermediaryBankCountry,
		"intermediary_bank_account": r.IntermediaryBankAccount,
		"intermediary_bank_swift":   r.IntermediaryBankSwift,
	}
}

func (r WithdrawRequest) validate() error {
	if r.WithdrawType == "" {
		return invalidArgument("не указан withdraw_type")
	}
	if r.WalletSelected == "" {
		return invalidArgument("не указан кошелёк")
	}
	if !r.Amount.IsPositive() {
		return invalidArgument("сумма должна быть больше нуля: %s", r.Amount)
	}
	return nil
}

// Deposit requests a deposit address for method ("bitcoin", "litecoin", ...)
// on the given wallet. renew asks for a fresh address. method is sent
// lower-cased.
func (c *Private) Deposit(ctx context.Context, method string, wallet models.WalletType, renew bool) (*models.DepositAddress, error) {
	if method == "" || wallet == "" {
		return nil, invalidArgument("не указан метод или кошелёк")
	}

	params := map[string]any{
		"method":      strings.ToLower(method),
		"wallet_name": string(wallet),
		"renew":       boolFlag(renew),
	}

	var addr models.DepositAddress
	if _, err := c.post(ctx, "v1/deposit/new", params, &addr); err != nil {
		return nil, err
	}
	return &addr, nil
}

// Transfer moves funds between the account's own wallets. currency is sent
// lower-cased; empty means the client's default currency.
func (c *Private) Transfer(ctx context.Context, amount decimal.Decimal, currency string, from, to models.WalletType) ([]models.TransferResult, error) {
	if !amount.IsPositive() {
		return nil, invalidArgument("сумма должна быть больше нуля: %s", amount)
	}
	if from == "" || to == "" {
		return nil, invalidArgument("не указаны кошельки")
	}

	params := map[string]any{
		"amount":     amount.String(),
		"currency":   c.currency(currency),
		"walletfrom": string(from),
		"walletto":   string(to),
	}

	var results []models.TransferResult
	if _, err := c.post(ctx, "v1/transfer", params, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Withdraw submits req; WithdrawType is sent lower-cased.
func (c *Private) Withdraw(ctx context.Context, req WithdrawRequest) ([]models.WithdrawalResult, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	var results []models.WithdrawalResult
	if _, err := c.post(ctx, "v1/withdraw", req.params(), &results); err != nil {
		return nil, err
	}
	return results, nil
}

func boolFlag(v bool) int {
	if v {
		return 1
	}
	return 0
}
