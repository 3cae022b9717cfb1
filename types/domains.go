package types

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// Domains is a name to Domain mapping that remembers document order
type Domains struct {
	names  []string
	byName map[string]Domain
}

// Names returns the domain names in document order
func (d Domains) Names() []string {
	return append([]string(nil), d.names...)
}

// Get looks up a domain by name
func (d Domains) Get(name string) (Domain, bool) {
	dom, ok := d.byName[name]
	return dom, ok
}

// Set adds or replaces a domain. New names go to the end.
func (d *Domains) Set(name string, dom Domain) {
	if d.byName == nil {
		d.byName = make(map[string]Domain)
	}
	if _, ok := d.byName[name]; !ok {
		d.names = append(d.names, name)
	}
	d.byName[name] = dom
}

// UnmarshalYAML decodes the mapping as a MapSlice to keep key order, then
// decodes every value into a Domain.
func (d *Domains) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var order yaml.MapSlice
	if err := unmarshal(&order); err != nil {
		return err
	}

	*d = Domains{}
	for _, item := range order {
		name := fmt.Sprint(item.Key)
		dom, err := decodeDomain(item.Value)
		if err != nil {
			return fmt.Errorf("domain %s: %v", name, err)
		}
		d.Set(name, dom)
	}
	return nil
}

func decodeDomain(value interface{}) (Domain, error) {
	var dom Domain
	data, err := yaml.Marshal(value)
	if err != nil {
		return dom, err
	}
	err = yaml.Unmarshal(data, &dom)
	return dom, err
}
