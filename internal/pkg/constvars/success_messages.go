package constvars

const (
	CreateUserSuccessMessage      = "Successfully created user"
	GetUserSuccessMessage         = "Successfully retrieved user"
	RegisterPatientSuccessMessage = "Successfully registered patient"
	GetDoctorsSuccessMessage      = "Successfully retrieved doctors"
)
