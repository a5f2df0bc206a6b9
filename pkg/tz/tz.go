package tz

import "time"

// Berlin is the Europe/Berlin location (CET/CEST with automatic DST).
var Berlin *time.Location

func init() {
	var err error
	Berlin, err = time.LoadLocation("Europe/Berlin")
	if err != nil {
		panic("tz: load Europe/Berlin: " + err.Error())
	}
}
