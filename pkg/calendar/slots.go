package calendar

import (
	"fmt"
	"iter"
	"time"
)

const (
	DefaultStartHour       = 8
	DefaultEndHour         = 18
	DefaultIntervalMinutes = 30
)

// TimeSlots yields a 12-hour clock label ("8:00 AM") for every interval starting within
// [startHour, endHour). Slots restart at the top of every hour. Nothing is yielded if
// intervalMinutes is not positive. The sequence is stateless and can be ranged over repeatedly.
func TimeSlots(startHour, endHour, intervalMinutes int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if intervalMinutes <= 0 {
			return
		}
		for hour := startHour; hour < endHour; hour++ {
			for minute := 0; minute < 60; minute += intervalMinutes {
				if !yield(SlotLabel(hour, minute)) {
					return
				}
			}
		}
	}
}

// DefaultTimeSlots yields the half hour slots of a working day from 8 AM to 6 PM.
func DefaultTimeSlots() iter.Seq[string] {
	return TimeSlots(DefaultStartHour, DefaultEndHour, DefaultIntervalMinutes)
}

// SlotLabel formats hour and minute on a 12-hour clock.
func SlotLabel(hour, minute int) string {
	h := hour % 12
	if h == 0 {
		h = 12
	}
	period := "AM"
	if hour%24 >= 12 {
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, period)
}

// HourBucket groups the items starting within one hour of a day.
type HourBucket[T any] struct {
	Hour  int    `json:"hour"`
	Label string `json:"label"`
	Items []T    `json:"items"`
}

// BucketByHour distributes items into one bucket per hour from firstHour to lastHour inclusive
// using the hour of the instant returned by startOf. Items starting outside the range are
// dropped. Items keep their relative order within a bucket.
func BucketByHour[T any](items []T, startOf func(T) time.Time, firstHour, lastHour int) []HourBucket[T] {
	if lastHour < firstHour {
		return nil
	}

	buckets := make([]HourBucket[T], 0, lastHour-firstHour+1)
	for hour := firstHour; hour <= lastHour; hour++ {
		buckets = append(buckets, HourBucket[T]{Hour: hour, Label: SlotLabel(hour, 0), Items: []T{}})
	}

	for _, item := range items {
		hour := startOf(item).Hour()
		if hour < firstHour || hour > lastHour {
			continue
		}
		bucket := &buckets[hour-firstHour]
		bucket.Items = append(bucket.Items, item)
	}

	return buckets
}
