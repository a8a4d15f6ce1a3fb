// Package zone looks up the offset of a named IANA timezone at an instant,
// in the millisecond "UTC minus local" convention used by datefmt.
//
// The Gregorian calendar was adopted on 1582-10-15.  Instants before
// 1582-10-16T00:00:00Z are looked up at that cutoff instead, which is local
// mean time for every known region.  The 16th keeps zones behind UTC clear of
// the gap between the 4th and the 15th.  Results for such early instants
// ignore that the region may not have existed; use them with care.
package zone

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang/groupcache/lru"
	log "github.com/sirupsen/logrus"
)

const logModule = "zone"

// ErrUnknownZone is returned when a zone identifier cannot be loaded.
var ErrUnknownZone = errors.New("unknown time zone")

// Cutoff is the earliest instant looked up in a zone database.
var Cutoff = time.Date(1582, 10, 16, 0, 0, 0, 0, time.UTC)

const locationCacheSize = 64

var (
	mu        sync.Mutex
	locations = lru.New(locationCacheSize)
)

// Location loads the named zone, caching loaded locations.
func Location(id string) (*time.Location, error) {
	mu.Lock()
	v, ok := locations.Get(id)
	mu.Unlock()
	if ok {
		return v.(*time.Location), nil
	}

	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("zone: Location: %w: %q: %v", ErrUnknownZone, id, err)
	}
	mu.Lock()
	locations.Add(id, loc)
	mu.Unlock()
	return loc, nil
}

// Offset returns the offset of zone id at t in milliseconds, UTC minus
// local: Europe/Paris in winter yields -3600000.
func Offset(t time.Time, id string) (int64, error) {
	loc, err := Location(id)
	if err != nil {
		return 0, err
	}
	if t.Before(Cutoff) {
		log.WithFields(log.Fields{"module": logModule, "zone": id, "instant": t}).Debug("instant before Gregorian cutoff, using cutoff offset")
		t = Cutoff
	}
	_, east := t.In(loc).Zone()
	return -int64(east) * 1000, nil
}
