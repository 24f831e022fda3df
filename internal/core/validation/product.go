package validation

import "github.com/SscSPs/biz_records_app/internal/core/domain"

var productRequired = []string{"name", "category", "price", "expiryDate", "barcode"}

// ValidateProductCreate validates a new product. Price is rounded to cents
// before range checks; expiryDate must be in the future.
func (v *Validator) ValidateProductCreate(in Input) (domain.Product, error) {
	r := newReader(in)
	r.require(productRequired...)
	if err := r.missingError(); err != nil {
		return domain.Product{}, err
	}

	p := domain.Product{
		Name:             r.str("name"),
		Category:         domain.ProductCategory(r.str("category")),
		Price:            domain.RoundPrice(r.number("price")),
		Quantity:         r.integer("quantity"),
		Description:      r.str("description"),
		ExpiryDate:       r.date("expiryDate"),
		Brand:            r.str("brand"),
		NutritionalInfo:  nutritionalInfo(r),
		StorageCondition: domain.StorageCondition(r.str("storageCondition")),
		Barcode:          r.str("barcode"),
	}
	if p.StorageCondition == "" {
		p.StorageCondition = domain.StorageRoomTemperature
	}
	v.future(r, "expiryDate", p.ExpiryDate)
	if err := v.check(r, p); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// ValidateProductPatch validates the fields supplied in a product update.
func (v *Validator) ValidateProductPatch(in Input) (domain.ProductPatch, error) {
	r := newReader(in)
	r.forbidEmpty(productRequired...)
	r.forbidEmpty("storageCondition")

	p := domain.ProductPatch{
		Name:             r.optString("name"),
		Category:         typedPtr[domain.ProductCategory](r.optString("category")),
		Price:            r.optDecimal("price"),
		Quantity:         r.optInt("quantity"),
		Description:      r.optString("description"),
		ExpiryDate:       r.optDate("expiryDate"),
		Brand:            r.optString("brand"),
		NutritionalInfo:  nutritionalInfo(r),
		StorageCondition: typedPtr[domain.StorageCondition](r.optString("storageCondition")),
		Barcode:          r.optString("barcode"),
	}
	if p.Price != nil {
		rounded := domain.RoundPrice(*p.Price)
		p.Price = &rounded
	}
	if err := v.check(r, p); err != nil {
		return domain.ProductPatch{}, err
	}
	return p, nil
}

func nutritionalInfo(r *reader) *domain.NutritionalInfo {
	if !r.present("nutritionalInfo") {
		return nil
	}
	sub := r.object("nutritionalInfo")
	info := &domain.NutritionalInfo{Calories: sub.optDecimal("calories")}
	if allergens := sub.optStrings("allergens"); allergens != nil {
		info.Allergens = *allergens
	}
	return info
}
