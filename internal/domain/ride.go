package domain

// RideApp describes a third-party ride-hailing app and its pricing relative
// to the plain per-mode cost estimate. Static table, never mutated.
type RideApp struct {
	Key        string                    `json:"key"`
	Name       string                    `json:"name"`
	Icon       string                    `json:"icon"`
	BrandColor string                    `json:"brand_color"`
	BaseRate   map[TransportMode]float64 `json:"-"`
	SurgeRate  float64                   `json:"surge_rate"`
	WaitMinMin int                       `json:"wait_min_minutes"`
	WaitMaxMin int                       `json:"wait_max_minutes"`
	URL        string                    `json:"url"`
}

// RideApps lists the supported Bangkok ride-hailing apps.
var RideApps = []RideApp{
	{
		Key: "grab", Name: "Grab", Icon: "🟢", BrandColor: "#15A355",
		BaseRate:  map[TransportMode]float64{ModeCar: 1.2, ModeMotorcycle: 1.0},
		SurgeRate: 1.5, WaitMinMin: 3, WaitMaxMin: 8,
		URL: "https://grab.com/th/",
	},
	{
		Key: "bolt", Name: "Bolt", Icon: "⚡", BrandColor: "#34D186",
		BaseRate:  map[TransportMode]float64{ModeCar: 1.0, ModeMotorcycle: 0.8},
		SurgeRate: 1.3, WaitMinMin: 2, WaitMaxMin: 6,
		URL: "https://bolt.eu/th/",
	},
	{
		Key: "lineman", Name: "LINE MAN", Icon: "💚", BrandColor: "#06C355",
		BaseRate:  map[TransportMode]float64{ModeCar: 1.1, ModeMotorcycle: 0.9},
		SurgeRate: 1.4, WaitMinMin: 4, WaitMaxMin: 10,
		URL: "https://lineman.line.me/",
	},
}

// RideQuote is a per-app fare and wait estimate derived from a travel
// estimate. Ephemeral.
type RideQuote struct {
	App            string `json:"app"`
	Name           string `json:"name"`
	Icon           string `json:"icon"`
	EstimatedCost  int    `json:"estimated_cost_thb"`
	WaitMinMinutes int    `json:"wait_min_minutes"`
	WaitMaxMinutes int    `json:"wait_max_minutes"`
	Surge          bool   `json:"surge"`
	URL            string `json:"url"`
}
