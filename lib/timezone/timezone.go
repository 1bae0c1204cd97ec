package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Australia/Sydney")
	if err != nil {
		panic(err)
	}
}

// force timezone to be in Sydney because the NRL publishes its draw in
// AEST/AEDT and our servers may end up anywhere, which will cause
// disturbances when manipulating dates based on <time.Time>.Year()/Month()/Day()/...
func Now() time.Time {
	return time.Now().In(Location)
}
