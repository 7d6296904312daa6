package v1

import "github.com/shenikar/ambulance_dispatch_system/internal/models"

func locationToModel(l LocationRequest) models.Location {
	var loc models.Location
	if l.Latitude != nil {
		loc.Latitude = *l.Latitude
	}
	if l.Longitude != nil {
		loc.Longitude = *l.Longitude
	}
	return loc
}

// DTOToEmergencyRequest преобразует DTO вызова в доменную модель
func DTOToEmergencyRequest(dto DispatchRequest) *models.EmergencyRequest {
	request := &models.EmergencyRequest{
		RequestID:     dto.RequestID,
		UserID:        dto.UserID,
		UserLocation:  locationToModel(dto.UserLocation),
		EmergencyType: dto.EmergencyType,
		Status:        models.RequestRequested,
	}
	if dto.Timestamp != nil {
		request.Timestamp = dto.Timestamp.UTC()
	}
	return request
}

// DTOToHospital преобразует DTO регистрации в модель больницы
func DTOToHospital(dto RegisterHospitalRequest) *models.Hospital {
	point := locationToModel(LocationRequest{Latitude: dto.Location.Latitude, Longitude: dto.Location.Longitude})
	return &models.Hospital{
		HospitalID: dto.HospitalID,
		Name:       dto.Name,
		Location: models.HospitalLocation{
			Latitude:   point.Latitude,
			Longitude:  point.Longitude,
			Address:    dto.Location.Address,
			City:       dto.Location.City,
			State:      dto.Location.State,
			Country:    dto.Location.Country,
			PostalCode: dto.Location.PostalCode,
		},
		Contact: models.ContactInfo{
			Phone:          dto.Contact.Phone,
			Email:          dto.Contact.Email,
			Website:        dto.Contact.Website,
			EmergencyPhone: dto.Contact.EmergencyPhone,
		},
		Services:           dto.Services,
		EmergencyCapacity:  dto.EmergencyCapacity,
		VerificationStatus: dto.VerificationStatus,
		AdminID:            dto.AdminID,
	}
}

// DTOToAmbulance преобразует DTO регистрации в модель машины
func DTOToAmbulance(dto RegisterAmbulanceRequest) *models.Ambulance {
	a := &models.Ambulance{
		AmbulanceID:        dto.AmbulanceID,
		HospitalID:         dto.HospitalID,
		RegistrationNumber: dto.RegistrationNumber,
		VehicleType:        dto.VehicleType,
		Capacity:           dto.Capacity,
		Equipment:          dto.Equipment,
		CurrentStatus:      dto.CurrentStatus,
	}
	if dto.CurrentLocation != nil {
		loc := locationToModel(*dto.CurrentLocation)
		a.CurrentLocation = &loc
	}
	return a
}
