package core

import (
	"github.com/edustats/gradeboard/schema"
)

// RollupTopics groups question stats by topic and derives the per-topic
// mean pass rate, classified through the same pass scale as individual
// questions. Topics appear in the order their first question appears; the
// mean is unweighted, so topics with uneven question counts are still a
// plain average of their own questions' rates.
func RollupTopics(questions []schema.QuestionStats, scale schema.Scale) []schema.TopicStats {
	order := make([]string, 0)
	rates := make(map[string][]float64)
	for _, q := range questions {
		if _, seen := rates[q.Topic]; !seen {
			order = append(order, q.Topic)
		}
		rates[q.Topic] = append(rates[q.Topic], q.PassRate)
	}

	topics := make([]schema.TopicStats, 0, len(order))
	for _, topic := range order {
		rate := Round1(Mean(rates[topic]))
		status := scale.Classify(rate)
		topics = append(topics, schema.TopicStats{
			Topic:       topic,
			Questions:   len(rates[topic]),
			PassRate:    rate,
			Status:      status,
			Problematic: status == schema.StatusProblematic,
		})
	}
	return topics
}

// ProblematicTopics filters the rollup down to problematic topics,
// preserving rollup order.
func ProblematicTopics(topics []schema.TopicStats) []schema.TopicStats {
	var problems []schema.TopicStats
	for _, t := range topics {
		if t.Problematic {
			problems = append(problems, t)
		}
	}
	return problems
}
