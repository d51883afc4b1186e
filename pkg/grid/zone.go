package grid

import "fmt"

// UTM zone band covered by the scheme.
const (
	// ZoneWidthDeg is the longitudinal width of one UTM zone.
	ZoneWidthDeg = 6

	// AATWestLon and AATEastLon bound the covered territory in degrees east.
	AATWestLon = 44
	AATEastLon = 160

	// UTMSouthLatLimit is the southern latitude limit of standard UTM
	// zones; coverage below it uses polar stereographic grids instead.
	UTMSouthLatLimit = -70
)

// ZoneForLongitude returns the UTM zone number containing the given
// longitude in degrees east (negative west). Longitude 180 wraps into the
// last zone.
func ZoneForLongitude(lon float64) (int, error) {
	if lon < -180 || lon > 180 {
		return 0, fmt.Errorf("longitude %g out of range [-180, 180]", lon)
	}
	if lon == 180 {
		return 60, nil
	}
	return int((lon+180)/ZoneWidthDeg) + 1, nil
}

// ZoneWestLon returns the western boundary of a zone in degrees east.
func ZoneWestLon(zone int) float64 {
	return float64(zone)*ZoneWidthDeg - 186
}

// ZoneCentralLon returns the central meridian of a zone in degrees east.
func ZoneCentralLon(zone int) float64 {
	return ZoneWestLon(zone) + ZoneWidthDeg/2.0
}

// CoveredZones returns the inclusive range of UTM zones intersecting the
// covered longitude band.
func CoveredZones() (min, max int) {
	min, _ = ZoneForLongitude(AATWestLon)
	max, _ = ZoneForLongitude(AATEastLon)
	return min, max
}

// Landmark is an illustrative sample point placed on the zone coverage
// diagram. Marker names a color in the figure style palette.
type Landmark struct {
	Name   string
	Lon    float64 // degrees east
	Lat    float64 // degrees north (negative south)
	Marker string
}

// Landmarks returns the sample points shown on the coverage sketch.
func Landmarks() []Landmark {
	return []Landmark{
		{Name: "Heard Is.", Lon: 73.5, Lat: -53.0, Marker: "red"},
		{Name: "Macquarie Is.", Lon: 158.85, Lat: -54.6, Marker: "red"},
		{Name: "Davis Stn", Lon: 77.97, Lat: -68.58, Marker: "blue"},
	}
}
