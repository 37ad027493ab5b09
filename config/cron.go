package config

// CronJob pairs a cron schedule with a job function.
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// CronJobs maps job names to compiled-in jobs. Extension packages register
// additional jobs through cron.Register from init().
var CronJobs = map[string]CronJob{}
