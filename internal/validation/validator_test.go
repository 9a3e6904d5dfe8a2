package validation

import (
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type amountForm struct {
	Amount  string  `json:"amount" validate:"required,positive_amount"`
	Numeric float64 `json:"numeric" validate:"omitempty,positive_amount"`
}

type loanForm struct {
	PAN         string `json:"pan" validate:"required,pan_number"`
	Aadhaar     string `json:"adhar" validate:"required,aadhaar_number"`
	CreditScore int    `json:"creditScore" validate:"credit_score"`
}

func TestPositiveAmount(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(amountForm{Amount: "100.50"}))
	assert.NoError(t, v.Struct(amountForm{Amount: "1", Numeric: 2.5}))
	assert.Error(t, v.Struct(amountForm{Amount: "0"}))
	assert.Error(t, v.Struct(amountForm{Amount: "12abc"}))
	assert.Error(t, v.Struct(amountForm{Amount: "-3"}))
	assert.Error(t, v.Struct(amountForm{Amount: "5", Numeric: -1}))
}

func TestLoanRules(t *testing.T) {
	v := NewValidator()

	valid := loanForm{PAN: "ABCDE1234F", Aadhaar: "123412341234", CreditScore: 750}
	assert.NoError(t, v.Struct(valid))

	tests := []struct {
		name  string
		form  loanForm
		field string
	}{
		{name: "short pan", form: loanForm{PAN: "ABC", Aadhaar: "123412341234", CreditScore: 700}, field: "pan"},
		{name: "short aadhaar", form: loanForm{PAN: "ABCDE1234F", Aadhaar: "1234", CreditScore: 700}, field: "adhar"},
		{name: "score above max", form: loanForm{PAN: "ABCDE1234F", Aadhaar: "123412341234", CreditScore: 801}, field: "creditScore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.form)
			require.Error(t, err)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.field, verrs[0].Field())
		})
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}

func TestGetValidator_ConcurrentFirstUse(t *testing.T) {
	const workers = 16
	got := make([]*Validator, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = GetValidator()
		}(i)
	}
	wg.Wait()

	for _, v := range got {
		assert.Same(t, got[0], v)
	}
}

func TestFailedRules(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.FailedRules(loanForm{PAN: "ABCDE1234F", Aadhaar: "123412341234", CreditScore: 10}))

	failed := v.FailedRules(loanForm{PAN: "ABC", Aadhaar: "12", CreditScore: 900})
	assert.Equal(t, map[string]bool{"pan_number": true, "aadhaar_number": true, "credit_score": true}, failed)

	failed = v.FailedRules(amountForm{})
	assert.True(t, failed["required"])
	assert.False(t, failed["positive_amount"])

	assert.True(t, v.FailedRules("not a struct")["invalid"])
}
