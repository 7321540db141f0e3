package insights

import (
	"sort"

	"github.com/google/uuid"
)

const lonePeerPercentile = 50

// compareAgainstPeers positions the guide's scalar inside the branch peer
// distribution. Percentile is (peers with value <= guide's value) / peer
// count, expressed 0-100; ties are inclusive. The guide is part of its own
// peer set. A branch where nobody else was active yields the neutral
// percentile 50 and a peer average of 0.
func compareAgainstPeers(guideID uuid.UUID, value float64, peers map[uuid.UUID]float64) ComparativeStat {
	others := 0
	for id := range peers {
		if id != guideID {
			others++
		}
	}
	if others == 0 {
		return ComparativeStat{Value: value, PeerAverage: 0, Percentile: lonePeerPercentile}
	}

	values := make([]float64, 0, len(peers)+1)
	if _, ok := peers[guideID]; !ok {
		values = append(values, value)
	}
	sum := 0.0
	for _, peerValue := range peers {
		values = append(values, peerValue)
		sum += peerValue
	}
	sort.Float64s(values)

	atOrBelow := 0
	for _, peerValue := range values {
		if peerValue <= value {
			atOrBelow++
		}
	}

	return ComparativeStat{
		Value:       value,
		PeerAverage: sum / float64(len(peers)),
		Percentile:  float64(atOrBelow) / float64(len(values)) * 100,
	}
}
