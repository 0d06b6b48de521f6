package dataset

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// The source metadata stores the hierarchy as level1..level5 fields, with
// null marking unused depths. Both decoders funnel through objectLevels.
type objectLevels struct {
	Name   string  `json:"object_name" yaml:"object_name"`
	Level1 *string `json:"level1" yaml:"level1"`
	Level2 *string `json:"level2" yaml:"level2"`
	Level3 *string `json:"level3" yaml:"level3"`
	Level4 *string `json:"level4" yaml:"level4"`
	Level5 *string `json:"level5" yaml:"level5"`
}

func (o *ObjectRef) fromLevels(aux objectLevels) {
	o.Name = aux.Name
	for i, p := range []*string{aux.Level1, aux.Level2, aux.Level3, aux.Level4, aux.Level5} {
		if p != nil {
			o.Levels[i] = *p
		}
	}
}

func (o *ObjectRef) UnmarshalJSON(data []byte) error {
	var aux objectLevels
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	o.fromLevels(aux)
	return nil
}

func (o *ObjectRef) UnmarshalYAML(value *yaml.Node) error {
	var aux objectLevels
	if err := value.Decode(&aux); err != nil {
		return err
	}
	o.fromLevels(aux)
	return nil
}

func (o ObjectRef) MarshalJSON() ([]byte, error) {
	aux := objectLevels{Name: o.Name}
	for i, p := range []**string{&aux.Level1, &aux.Level2, &aux.Level3, &aux.Level4, &aux.Level5} {
		if o.Levels[i] != "" {
			v := o.Levels[i]
			*p = &v
		}
	}
	return json.Marshal(aux)
}
