package service

import (
	"math/rand"

	"github.com/roguecreek/quartermaster/internal/catalog"
)

// RadioService picks a broadcast frequency at random from the station
// catalog. Stateless.
type RadioService struct {
	pick func(n int) int
}

func NewRadioService() *RadioService {
	return &RadioService{
		pick: rand.Intn,
	}
}

func (s *RadioService) Pick() float64 {
	stations := catalog.RadioStations
	return stations[s.pick(len(stations))]
}
