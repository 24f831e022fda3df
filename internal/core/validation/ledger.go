package validation

import "github.com/SscSPs/biz_records_app/internal/core/domain"

var ledgerFields = []string{"title", "amount", "category", "description", "paymentType", "date"}

// ValidateIncomeCreate validates a new income entry.
func (v *Validator) ValidateIncomeCreate(in Input) (domain.Income, error) {
	r := newReader(in)
	r.require(ledgerFields...)
	if err := r.missingError(); err != nil {
		return domain.Income{}, err
	}

	income := domain.Income{
		Title:       r.str("title"),
		Amount:      r.number("amount"),
		Category:    r.str("category"),
		Description: r.str("description"),
		PaymentType: domain.PaymentType(r.str("paymentType")),
		Date:        r.date("date"),
	}
	if err := v.check(r, income); err != nil {
		return domain.Income{}, err
	}
	return income, nil
}

// ValidateIncomePatch validates the fields supplied in an income update.
func (v *Validator) ValidateIncomePatch(in Input) (domain.IncomePatch, error) {
	r := newReader(in)
	r.forbidEmpty(ledgerFields...)

	p := domain.IncomePatch{
		Title:       r.optString("title"),
		Amount:      r.optDecimal("amount"),
		Category:    r.optString("category"),
		Description: r.optString("description"),
		PaymentType: typedPtr[domain.PaymentType](r.optString("paymentType")),
		Date:        r.optDate("date"),
	}
	if err := v.check(r, p); err != nil {
		return domain.IncomePatch{}, err
	}
	return p, nil
}

// ValidateExpenseCreate validates a new expense entry.
func (v *Validator) ValidateExpenseCreate(in Input) (domain.Expense, error) {
	r := newReader(in)
	r.require(ledgerFields...)
	if err := r.missingError(); err != nil {
		return domain.Expense{}, err
	}

	expense := domain.Expense{
		Title:       r.str("title"),
		Amount:      r.number("amount"),
		Category:    r.str("category"),
		Description: r.str("description"),
		PaymentType: domain.PaymentType(r.str("paymentType")),
		Date:        r.date("date"),
	}
	if err := v.check(r, expense); err != nil {
		return domain.Expense{}, err
	}
	return expense, nil
}

// ValidateExpensePatch validates the fields supplied in an expense update.
func (v *Validator) ValidateExpensePatch(in Input) (domain.ExpensePatch, error) {
	r := newReader(in)
	r.forbidEmpty(ledgerFields...)

	p := domain.ExpensePatch{
		Title:       r.optString("title"),
		Amount:      r.optDecimal("amount"),
		Category:    r.optString("category"),
		Description: r.optString("description"),
		PaymentType: typedPtr[domain.PaymentType](r.optString("paymentType")),
		Date:        r.optDate("date"),
	}
	if err := v.check(r, p); err != nil {
		return domain.ExpensePatch{}, err
	}
	return p, nil
}
