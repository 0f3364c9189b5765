package appointment

import "fmt"

// ===============================
// Service Type
// ===============================

type ServiceType string

const (
	ServiceCorte ServiceType = "corte"
	ServiceBarba ServiceType = "barba"
	ServiceTinte ServiceType = "tinte"
)

// ServiceTypes lists every service in catalogue order.
var ServiceTypes = []ServiceType{ServiceCorte, ServiceBarba, ServiceTinte}

func ParseServiceType(raw string) (ServiceType, error) {
	switch s := ServiceType(raw); s {
	case ServiceCorte, ServiceBarba, ServiceTinte:
		return s, nil
	}
	return "", fmt.Errorf("appointment: unknown service type %q", raw)
}

// Timed reports whether the service is booked on the slot grid.
// The others are coordinated by phone.
func (s ServiceType) Timed() bool {
	switch s {
	case ServiceCorte:
		return true
	case ServiceBarba, ServiceTinte:
		return false
	}
	return false
}

func (s ServiceType) Label() string {
	switch s {
	case ServiceCorte:
		return "Corte de Pelo"
	case ServiceBarba:
		return "Barba"
	case ServiceTinte:
		return "Teñido/Color"
	}
	return string(s)
}

func (s ServiceType) Description() string {
	switch s {
	case ServiceCorte:
		return "Estilo clásico o moderno"
	case ServiceBarba:
		return "Perfilado y arreglo de barba"
	case ServiceTinte:
		return "Cambio de look completo"
	}
	return ""
}

// ===============================
// Pricing
// ===============================

// PriceTable holds prices in whole currency units.
type PriceTable struct {
	Corte int64
	Barba int64
	Tinte int64
}

func (p PriceTable) For(s ServiceType) int64 {
	switch s {
	case ServiceCorte:
		return p.Corte
	case ServiceBarba:
		return p.Barba
	case ServiceTinte:
		return p.Tinte
	}
	return 0
}
