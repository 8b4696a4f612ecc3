package entities

// Distributor is an external ticket vendor. SearchAddress is a URL template
// with a {query} placeholder for the event name.
type Distributor struct {
	ID            int64
	Name          string
	SearchAddress string
}
