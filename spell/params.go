package spell

// ParamNames is the fixed catalog of well-known parameter names. A
// parameter is encoded as its index in this list; any name outside the
// catalog travels as literal text. The order is part of the wire format
// and must never change.
var ParamNames = [43]string{
	"_target",
	"_number",
	"_number1",
	"_number2",
	"_number3",
	"_number4",
	"_vector1",
	"_vector2",
	"_vector3",
	"_vector4",
	"_position",
	"_min",
	"_max",
	"_power",
	"_x",
	"_y",
	"_z",
	"_radius",
	"_distance",
	"_time",
	"_base",
	"_ray",
	"_vector",
	"_axis",
	"_angle",
	"_pitch",
	"_instrument",
	"_volume",
	"_list1",
	"_list2",
	"_list",
	"_direction",
	"_from1",
	"_from2",
	"_to1",
	"_to2",
	"_root",
	"_toggle",
	"_mask",
	"_channel",
	"_slot",
	"_ray_end",
	"_ray_start",
}

var paramIndexes = func() map[string]uint8 {
	m := make(map[string]uint8, len(ParamNames))
	for i, name := range ParamNames {
		m[name] = uint8(i)
	}
	return m
}()

// ParamIndex returns the catalog index of name, or false if the name is
// not in the catalog and must be encoded as a literal.
func ParamIndex(name string) (uint8, bool) {
	i, ok := paramIndexes[name]
	return i, ok
}
