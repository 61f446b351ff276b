package warehouse

import (
	"fmt"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
)

// Dimensions of a parcel in centimeters. Only NewDimensions can build one.
type Dimensions struct {
	width, height, depth uint16
}

// NewDimensions builds a parcel size.
func NewDimensions(width, height, depth uint16) Dimensions {
	return Dimensions{width: width, height: height, depth: depth}
}

// Volume returns the parcel volume in cubic centimeters.
func (d Dimensions) Volume() uint64 {
	return uint64(d.width) * uint64(d.height) * uint64(d.depth)
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%dx%d", d.width, d.height, d.depth)
}

// Carrier moves shipments.
type Carrier interface {
	Code() string
}

// Truck is a road carrier.
type Truck struct {
	Plate    string `json:"plate"`
	Capacity uint32 `json:"capacity"`
}

func (t *Truck) Code() string { return "TRK-" + t.Plate }

// Drone is a short range carrier.
type Drone struct {
	Serial  uuid.UUID `json:"serial"`
	RangeKm uint8     `json:"range_km"`
}

func (d *Drone) Code() string { return "DRN-" + d.Serial.String()[:8] }

// NewTruck registers a truck by plate.
func NewTruck(plate string) *Truck {
	return &Truck{Plate: plate, Capacity: 1000}
}

// NewDrone refuses drones that cannot reach the nearest depot.
func NewDrone(serial uuid.UUID, rangeKm uint8) (*Drone, bool) {
	if rangeKm < 128 {
		return nil, false
	}

	return &Drone{Serial: serial, RangeKm: rangeKm}, true
}

// Address represents a physical shipping address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// Site is a warehouse location; its Manager works at the Site.
type Site struct {
	Code    string    `json:"code"`
	Address Address   `json:"address"`
	Manager *Employee `json:"manager,omitempty"`
}

// Employee works at a Site.
type Employee struct {
	Name string `json:"name"`
	Site *Site  `json:"site,omitempty"`
}

// Shipment is a parcel on its way.
type Shipment struct {
	ID          uuid.UUID         `json:"id"`
	Carrier     Carrier           `json:"carrier"`
	Parcel      Dimensions        `json:"parcel"`
	Weight      apd.Decimal       `json:"weight"`
	Origin      Site              `json:"origin"`
	Destination Address           `json:"destination"`
	Labels      map[string]string `json:"labels"`
	Events      [3]time.Time      `json:"events"`
	Internal    string            `json:"-" synth:"-"`
}

// MarshalText renders the dimensions as WxHxD.
func (d Dimensions) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
