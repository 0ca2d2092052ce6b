package domain

// CategoryRouter maps an issue category to the agency type responsible for
// it. The table is immutable after construction and injected into consumers
// rather than read from ambient state.
type CategoryRouter struct {
	table map[Category]AgencyType
}

// NewCategoryRouter builds the router with the fixed default mapping.
func NewCategoryRouter() *CategoryRouter {
	return &CategoryRouter{table: map[Category]AgencyType{
		CategoryJalan:     AgencyTypeInfrastructure,
		CategoryJembatan:  AgencyTypeInfrastructure,
		CategorySekolah:   AgencyTypeEducation,
		CategoryKesehatan: AgencyTypeHealth,
		CategoryAir:       AgencyTypeEnergyResources,
		CategoryListrik:   AgencyTypeEnergyResources,
	}}
}

// Route returns the agency type responsible for the category. The mapping is
// total over valid categories; an unknown category returns a ValidationError.
func (r *CategoryRouter) Route(c Category) (AgencyType, error) {
	t, ok := r.table[c]
	if !ok {
		return "", NewValidationError("category", "unknown category")
	}
	return t, nil
}
