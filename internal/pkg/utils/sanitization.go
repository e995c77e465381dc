package utils

import (
	"strings"

	"carepulse-service/internal/pkg/dto/requests"
)

func SanitizeCreateUserRequest(request *requests.CreateUser) {
	request.Name = strings.TrimSpace(request.Name)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Phone = strings.TrimSpace(request.Phone)
}

func SanitizeRegisterPatientRequest(request *requests.RegisterPatient) {
	request.Name = strings.TrimSpace(request.Name)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Phone = strings.TrimSpace(request.Phone)
	request.Address = strings.TrimSpace(request.Address)
	request.Occupation = strings.TrimSpace(request.Occupation)
	request.EmergencyContactName = strings.TrimSpace(request.EmergencyContactName)
	request.EmergencyContactNumber = strings.TrimSpace(request.EmergencyContactNumber)
	request.InsuranceProvider = strings.TrimSpace(request.InsuranceProvider)
	request.InsurancePolicyNumber = strings.TrimSpace(request.InsurancePolicyNumber)
	request.IdentificationNumber = strings.TrimSpace(request.IdentificationNumber)
}
