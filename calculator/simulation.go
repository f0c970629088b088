package calculator

import "invest-agent/domain"

const monthsPerYear = 12

// simulation replays monthly deposits against a compounding schedule that
// need not line up with month boundaries.
type simulation struct {
	payment float64
	growth  float64 // 1 + rate/f
	perYear int
	month   int
	applied int
	value   float64
}

func newSimulation(payment, rate float64, freq domain.CompoundFrequency) *simulation {
	return &simulation{
		payment: payment,
		growth:  1 + rate/float64(freq),
		perYear: int(freq),
	}
}

// step deposits one month's payment, then applies every compounding period
// due by the end of that month: floor(month × f / 12) in total.
func (s *simulation) step() {
	s.month++
	s.value += s.payment

	expected := s.month * s.perYear / monthsPerYear
	for s.applied < expected {
		s.value *= s.growth
		s.applied++
	}
}

func (s *simulation) run(months int) {
	for i := 0; i < months; i++ {
		s.step()
	}
}
