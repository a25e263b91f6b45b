package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PaymentMode represents how a rent payment was made
type PaymentMode int

const (
	PaymentModeCash        PaymentMode = 0
	PaymentModeCheque      PaymentMode = 1
	PaymentModeBankDeposit PaymentMode = 2
	PaymentModeUPI         PaymentMode = 3
	PaymentModeNetBanking  PaymentMode = 4
)

var paymentModeNames = [...]string{"Cash", "Cheque", "Bank Deposit", "UPI", "Net Banking"}

func (m PaymentMode) String() string {
	if m < 0 || int(m) >= len(paymentModeNames) {
		return "Cash"
	}
	return paymentModeNames[m]
}

// ParsePaymentMode parses a display name into a PaymentMode
func ParsePaymentMode(s string) (PaymentMode, error) {
	for i, name := range paymentModeNames {
		if name == s {
			return PaymentMode(i), nil
		}
	}
	return PaymentModeCash, fmt.Errorf("unknown payment mode %q", s)
}

func (m PaymentMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMode(i)
		return nil
	}
	mode, err := ParsePaymentMode(str)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

func (m PaymentMode) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMode) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentModeCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMode(v)
	case int:
		*m = PaymentMode(v)
	}
	return nil
}
