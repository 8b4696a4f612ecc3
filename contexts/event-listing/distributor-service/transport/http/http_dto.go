// Package http defines the JSON wire shapes of the distributor API.
package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type DistributorResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	SearchAddress string `json:"searchAddress"`
}

type DistributorListResponse struct {
	Items []DistributorResponse `json:"items"`
}

type SaveDistributorRequest struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	SearchAddress string `json:"searchAddress"`
}

type PurchaseURLResponse struct {
	URL string `json:"url"`
}
