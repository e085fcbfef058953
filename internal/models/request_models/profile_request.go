package request_models

type UpsertProfileRequest struct {
	Age               *int     `json:"age" binding:"omitempty,min=0,max=150"`
	Weight            *float64 `json:"weight" binding:"omitempty,gt=0"`
	Height            *float64 `json:"height" binding:"omitempty,gt=0"`
	Sex               string   `json:"sex" binding:"omitempty,oneof=male female other"`
	BloodType         string   `json:"bloodType" binding:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	EmergencyContact  string   `json:"emergencyContact"`
	ChronicConditions []string `json:"chronicConditions"`
	Allergies         []string `json:"allergies"`
	Medications       []string `json:"medications"`
	FamilyHistory     string   `json:"familyHistory"`
}

type UpsertDoctorProfileRequest struct {
	Specialization    string   `json:"specialization" binding:"required"`
	LicenseNumber     string   `json:"licenseNumber" binding:"required"`
	Bio               string   `json:"bio"`
	YearsOfExperience *int     `json:"yearsOfExperience" binding:"omitempty,min=0"`
	ConsultationPrice *float64 `json:"consultationPrice" binding:"omitempty,min=0"`
	IsAvailable       *bool    `json:"isAvailable"`
}
