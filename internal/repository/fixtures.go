package repository

import "github.com/deppfellow/classifieds/internal/model"

func realEstate(id int, name, description, location, propertyType string, area, rooms, price float64) *model.Listing {
	return &model.Listing{
		ID:          id,
		Name:        name,
		Description: description,
		Location:    location,
		Type:        model.CategoryRealEstate,
		Attributes: map[string]interface{}{
			"propertyType": propertyType,
			"area":         area,
			"rooms":        rooms,
			"price":        price,
		},
	}
}

func auto(id int, name, description, location, brand, carModel string, year, mileage float64) *model.Listing {
	return &model.Listing{
		ID:          id,
		Name:        name,
		Description: description,
		Location:    location,
		Type:        model.CategoryAuto,
		Attributes: map[string]interface{}{
			"brand":   brand,
			"model":   carModel,
			"year":    year,
			"mileage": mileage,
		},
	}
}

func services(id int, name, description, location, serviceType string, experience, cost float64, workSchedule string) *model.Listing {
	return &model.Listing{
		ID:          id,
		Name:        name,
		Description: description,
		Location:    location,
		Type:        model.CategoryServices,
		Attributes: map[string]interface{}{
			"serviceType":  serviceType,
			"experience":   experience,
			"cost":         cost,
			"workSchedule": workSchedule,
		},
	}
}

// Fixtures returns the demo listings the store is seeded with. Numbers are
// float64, matching what a JSON-decoded payload holds.
func Fixtures() []*model.Listing {
	return []*model.Listing{
		realEstate(9, "Квартира", "Просторная квартира в центре города", "Москва", "Квартира", 100, 3, 15000000),
		realEstate(7, "Квартира не в центре", "Просторная квартира не центре не города", "Рязань", "Квартира", 400, 6, 12000000),
		realEstate(8, "Дом за городом", "Просторный дом", "Новосибирск", "Дом", 200, 6, 8000000),
		realEstate(3, "Квартира в центре", "Просторная квартира в центре города", "Москва", "Квартира", 100, 3, 15000000),
		auto(1, "Toyota Camry", "Надежный автомобиль", "Москва", "Toyota", "Camry", 2020, 15000),
		auto(10, "Toyota Land Cruiser", "Надежный автомобиль", "Москва", "Toyota", "Land Cruiser", 2010, 200000),
		auto(5, "Haval H6", "Надежный автомобиль", "Новосибирск", "Haval", "H6", 2019, 60000),
		auto(6, "Suzuki Swift", "Компактный городской автомобиль", "Новосибирск", "Suzuki", "Swift", 2015, 110000),
		services(2, "Ремонт квартир", "Качественный ремонт квартир", "Москва", "Ремонт", 5, 50000, "Пн-Пт, 9:00-18:00"),
		services(4, "Уборщица квартир", "Качественная уборка квартир", "Сочи", "Уборка", 5, 50000, "Пн-Пт, 9:00-18:00"),
	}
}
