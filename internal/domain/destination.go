package domain

// Destination is a named place, either from the static popular table or a
// geocoder result.
type Destination struct {
	Name       string     `json:"name"`
	Category   string     `json:"category,omitempty"`
	Icon       string     `json:"icon,omitempty"`
	Coordinate Coordinate `json:"coordinate"`
	Address    string     `json:"address,omitempty"`
}

// PlaceDetail is a reverse-geocoding result for "where am I" display.
type PlaceDetail struct {
	Address  string `json:"address"`
	District string `json:"district,omitempty"`
	Province string `json:"province"`
	Display  string `json:"display"`
}

// PopularDestinations is the static fallback lookup used when the geocoder is
// unavailable and as the default suggestion list for an empty search query.
var PopularDestinations = []Destination{
	{Name: "Siam Paragon", Category: "shopping mall", Icon: "🛍️", Coordinate: Coordinate{Lat: 13.7463, Lng: 100.5340}},
	{Name: "CentralWorld", Category: "shopping mall", Icon: "🛍️", Coordinate: Coordinate{Lat: 13.7474, Lng: 100.5398}},
	{Name: "ICONSIAM", Category: "shopping mall", Icon: "🛍️", Coordinate: Coordinate{Lat: 13.7264, Lng: 100.5104}},
	{Name: "Suvarnabhumi Airport", Category: "airport", Icon: "✈️", Coordinate: Coordinate{Lat: 13.6900, Lng: 100.7501}},
	{Name: "Don Mueang Airport", Category: "airport", Icon: "✈️", Coordinate: Coordinate{Lat: 14.1384, Lng: 100.6169}},
	{Name: "Krung Thep Aphiwat Central Terminal", Category: "train station", Icon: "🚆", Coordinate: Coordinate{Lat: 13.7367, Lng: 100.5448}},
	{Name: "Chatuchak Market", Category: "market", Icon: "🛒", Coordinate: Coordinate{Lat: 13.7998, Lng: 100.5506}},
	{Name: "Suvarnabhumi ARL Station", Category: "rail link", Icon: "🚅", Coordinate: Coordinate{Lat: 13.6956, Lng: 100.7516}},
}

// BangkokCenter is the default reference point when no location is known.
var BangkokCenter = Coordinate{Lat: 13.7563, Lng: 100.5018}
