package constvars

const (
	RegexInternationalPhoneNumber = `^\+[1-9]\d{9,14}$`
)

const (
	DateLayoutISO = "2006-01-02"
)
