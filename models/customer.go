package models

// Customer is one row of the customers grid.
type Customer struct {
	ID       ID     `json:"id"`
	Descr1   string `json:"descr1"`
	Typology string `json:"typology"`
	City     string `json:"city"`
	Prov     string `json:"prov"`
}

// CustomerSummary is returned by GET /customers/Summary/{id} and is shown as
// the header of every customer sub-page.
type CustomerSummary struct {
	ID                ID     `json:"id"`
	Descr1            string `json:"descr1"`
	Address           string `json:"address"`
	City              string `json:"city"`
	Province          string `json:"province"`
	TotalDestinations int    `json:"totalDestinations"`
	TotalReferences   int    `json:"totalReferences"`
	TotalItems        int    `json:"totalItems"`
}
