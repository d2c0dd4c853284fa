package domain

type SheetMapping struct {
	ID            string `db:"id"            json:"id"`
	Name          string `db:"name"          json:"name"`
	TargetTable   string `db:"target_table"  json:"target_table"`
	CheckCustomer bool   `db:"check_customer" json:"check_customer"`
	CheckBrand    bool   `db:"check_brand"   json:"check_brand"`
	CheckProduct  bool   `db:"check_product" json:"check_product"`
	SkipFirstRow  bool   `db:"skip_first_row" json:"skip_first_row"`

	PhoneColumn        string `db:"phone_column"         json:"phone_column,omitempty"`
	CustomerNameColumn string `db:"customer_name_column" json:"customer_name_column,omitempty"`
	DateColumn         string `db:"date_column"          json:"date_column,omitempty"`
	ValueColumn        string `db:"value_column"         json:"value_column,omitempty"`
	BrandColumn        string `db:"brand_column"         json:"brand_column,omitempty"`
	ProductColumn      string `db:"product_column"       json:"product_column,omitempty"`

	// Columns is filled from the column mapping feed, not from the mappings table.
	Columns []string `db:"-" json:"columns,omitempty"`
}
