package timeline

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"
)

// Place is one visited location extracted from a location-history export.
type Place struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Time    string  `json:"time"`
	Address string  `json:"address"`
}

// Route is one movement between two locations.
type Route struct {
	StartLat float64 `json:"start_lat"`
	StartLng float64 `json:"start_lng"`
	EndLat   float64 `json:"end_lat"`
	EndLng   float64 `json:"end_lng"`
	Type     string  `json:"type"`
}

// Extract holds everything pulled out of one export document.
type Extract struct {
	Places []Place
	Routes []Route
}

// The export comes in two top-level shapes (bare array or an object with a
// timelineObjects key) and four record shapes: the Records format's "visit"
// and "activity", and the legacy "placeVisit" and "activitySegment". Every
// shape is optional per item; unknown items are skipped.
type item struct {
	StartTime       string           `json:"startTime"`
	Visit           *visit           `json:"visit"`
	Activity        *activity        `json:"activity"`
	PlaceVisit      *placeVisit      `json:"placeVisit"`
	ActivitySegment *activitySegment `json:"activitySegment"`
}

type visit struct {
	TopCandidate candidate `json:"topCandidate"`
}

type activity struct {
	Start        string    `json:"start"`
	End          string    `json:"end"`
	TopCandidate candidate `json:"topCandidate"`
}

type candidate struct {
	PlaceLocation string `json:"placeLocation"`
	Location      string `json:"location"`
	SemanticType  string `json:"semanticType"`
	Address       string `json:"address"`
	Type          string `json:"type"`
}

type placeVisit struct {
	Location *legacyLocation `json:"location"`
	Duration struct {
		StartTimestamp string `json:"startTimestamp"`
	} `json:"duration"`
}

type activitySegment struct {
	StartLocation *legacyLocation `json:"startLocation"`
	EndLocation   *legacyLocation `json:"endLocation"`
	ActivityType  string          `json:"activityType"`
}

type legacyLocation struct {
	Name        string `json:"name"`
	LatitudeE7  int64  `json:"latitudeE7"`
	LongitudeE7 int64  `json:"longitudeE7"`
	Address     string `json:"address"`
}

// Parse extracts places and routes from a location-history export. Records
// with malformed coordinates are skipped, not fatal; only malformed JSON
// fails the parse.
func Parse(r io.Reader) (*Extract, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var items []item
	if err := json.Unmarshal(data, &items); err != nil {
		var wrapper struct {
			TimelineObjects []item `json:"timelineObjects"`
		}
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, err
		}
		items = wrapper.TimelineObjects
	}

	extract := &Extract{}
	for _, it := range items {
		switch {
		case it.Visit != nil:
			extract.addVisit(it)
		case it.Activity != nil:
			extract.addActivity(it)
		case it.PlaceVisit != nil && it.PlaceVisit.Location != nil:
			extract.addPlaceVisit(it)
		case it.ActivitySegment != nil:
			extract.addActivitySegment(it)
		}
	}
	return extract, nil
}

func (e *Extract) addVisit(it item) {
	cand := it.Visit.TopCandidate
	geo := cand.PlaceLocation
	if geo == "" {
		geo = cand.Location
	}
	lat, lng, ok := parseGeo(geo)
	if !ok {
		return
	}

	name := cand.SemanticType
	if name == "" {
		name = "Unknown"
	}
	e.Places = append(e.Places, Place{
		Name:    name,
		Lat:     lat,
		Lng:     lng,
		Time:    it.StartTime,
		Address: cand.Address,
	})
}

func (e *Extract) addActivity(it item) {
	startLat, startLng, okStart := parseGeo(it.Activity.Start)
	endLat, endLng, okEnd := parseGeo(it.Activity.End)
	if !okStart || !okEnd {
		return
	}

	activityType := it.Activity.TopCandidate.Type
	if activityType == "" {
		activityType = "UNKNOWN"
	}
	e.Routes = append(e.Routes, Route{
		StartLat: startLat,
		StartLng: startLng,
		EndLat:   endLat,
		EndLng:   endLng,
		Type:     strings.ToUpper(activityType),
	})
}

func (e *Extract) addPlaceVisit(it item) {
	loc := it.PlaceVisit.Location
	name := loc.Name
	if name == "" {
		name = "Unknown"
	}
	e.Places = append(e.Places, Place{
		Name:    name,
		Lat:     float64(loc.LatitudeE7) / 1e7,
		Lng:     float64(loc.LongitudeE7) / 1e7,
		Time:    it.PlaceVisit.Duration.StartTimestamp,
		Address: loc.Address,
	})
}

func (e *Extract) addActivitySegment(it item) {
	seg := it.ActivitySegment
	if seg.StartLocation == nil || seg.EndLocation == nil {
		return
	}

	activityType := seg.ActivityType
	if activityType == "" {
		activityType = "UNKNOWN"
	}
	e.Routes = append(e.Routes, Route{
		StartLat: float64(seg.StartLocation.LatitudeE7) / 1e7,
		StartLng: float64(seg.StartLocation.LongitudeE7) / 1e7,
		EndLat:   float64(seg.EndLocation.LatitudeE7) / 1e7,
		EndLng:   float64(seg.EndLocation.LongitudeE7) / 1e7,
		Type:     activityType,
	})
}

// parseGeo decodes the "geo:lat,lng" coordinate strings of the Records
// format.
func parseGeo(s string) (lat, lng float64, ok bool) {
	if !strings.HasPrefix(s, "geo:") {
		return 0, 0, false
	}
	coords := strings.Split(s[len("geo:"):], ",")
	if len(coords) < 2 {
		return 0, 0, false
	}
	lat, errLat := strconv.ParseFloat(strings.TrimSpace(coords[0]), 64)
	lng, errLng := strconv.ParseFloat(strings.TrimSpace(coords[1]), 64)
	if errLat != nil || errLng != nil {
		return 0, 0, false
	}
	return lat, lng, true
}
