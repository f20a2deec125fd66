package model

type Job struct {
	JobSystemID         string `db:"jobSystemId"`
	JobID               string `db:"jobId"`
	Location            string `db:"location"`
	JobDescription      string `db:"jobDescription"`
	JobShortDescription string `db:"jobShortDescription"`
	Status              string `db:"status"`
	Program             string `db:"program"`
	JobGroup            string `db:"jobGroup"`
	StartYear           string `db:"startYear"`
	LastYear            string `db:"lastYear"`
	AccountSegment      string `db:"accountSegment"`
	DefaultActivityID   string `db:"defaultActivityId"`
	DefaultVehicleID    string `db:"defaultVehicleId"`
	DefaultProjectID    string `db:"defaultProjectId"`
	DefaultAssetID      string `db:"defaultAssetId"`
}

type Activity struct {
	ActivitySystemID         string `db:"activitySystemId"`
	ActivityID               string `db:"activityId"`
	ActivityType             string `db:"activityType"`
	ActivityDescription      string `db:"activityDescription"`
	ActivityShortDescription string `db:"activityShortDescription"`
	ActivityClass            string `db:"activityClass"`
	AccountSegment           string `db:"accountSegment"`
}

type ObjectCode struct {
	ObjectCodeSystemID    string `db:"objectCodeSystemId"`
	ObjectCode            string `db:"objectCode"`
	ObjectCodeDescription string `db:"objectCodeDescription"`
	AccountSegment        string `db:"accountSegment"`
}

// JobAssignedObjectCode is an object code scoped to a job and fiscal year.
// A non-empty AccountNumber overrides segment concatenation.
type JobAssignedObjectCode struct {
	ObjectCode
	AccountNumber string `db:"accountNumber"`
}

type JobActivityObjectCode struct {
	JobID         string `db:"jobId"`
	ActivityID    string `db:"activityId"`
	ObjectCode    string `db:"objectCode"`
	FiscalYear    string `db:"fiscalYear"`
	AccountNumber string `db:"accountNumber"`
}

type AccountNumberSource string

const (
	AccountNumberSourceJobActivityObjectCode AccountNumberSource = "jobActivityObjectCode"
	AccountNumberSourceJobObjectCode         AccountNumberSource = "jobObjectCode"
	AccountNumberSourceSegments              AccountNumberSource = "segments"
)

// AccountNumber is a resolved account number tagged with the tier that produced it.
type AccountNumber struct {
	AccountNumber       string
	AccountNumberSource AccountNumberSource
}
