package validation

// RegisterRules guards POST /api/user/register.
func RegisterRules() []Rule {
	return []Rule{
		{Field: "firstname", Check: IsString, Message: "First Name is required"},
		{Field: "lastname", Check: IsString, Message: "Last Name is required"},
		{Field: "email", Check: IsEmail, Message: "Email is required"},
		{Field: "password", Check: MinLength(8), Message: "Password with 8 or more characters required"},
	}
}

// HotelIDRules guards routes taking an id path parameter.
func HotelIDRules() []Rule {
	return []Rule{
		{Field: "id", Check: Required, Message: "Hotel ID is required"},
	}
}

// HotelRules guards the my-hotels create and update endpoints.
func HotelRules() []Rule {
	return []Rule{
		{Field: "name", Check: Required, Message: "Name is required"},
		{Field: "city", Check: Required, Message: "City is required"},
		{Field: "country", Check: Required, Message: "Country is required"},
		{Field: "description", Check: Required, Message: "Description is required"},
		{Field: "type", Check: Required, Message: "Hotel type is required"},
		{Field: "pricePerNight", Check: IsNumeric, Message: "Price per night is required and must be a number"},
		{Field: "facilities", Check: IsArray, Message: "Facilities are required"},
	}
}
