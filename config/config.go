/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package config

import "reflect"

// Config is a common interface for configuration objects that may be used by Loader.
type Config interface {
	SetProviderDefaults(dp DataProvider)
	Set(dp DataProvider) error
}

// KeyPrefixProvider is an interface for providing a key prefix
// under which all configuration parameters of the object are looked up.
type KeyPrefixProvider interface {
	KeyPrefix() string
}

// dataProviderForConfig scopes the data provider under the config's key prefix
// when the config provides one.
func dataProviderForConfig(cfg Config, dp DataProvider) DataProvider {
	if kpp, ok := cfg.(KeyPrefixProvider); ok && kpp.KeyPrefix() != "" {
		return NewKeyPrefixedDataProvider(dp, kpp.KeyPrefix())
	}
	return dp
}

// CallSetProviderDefaultsForFields walks all exported, initialized (non-nil) fields
// of the passed object and calls SetProviderDefaults() on each one implementing Config.
func CallSetProviderDefaultsForFields(obj interface{}, dp DataProvider) {
	el := reflect.ValueOf(obj).Elem()
	for i := 0; i < el.NumField(); i++ {
		if !el.Type().Field(i).IsExported() {
			continue
		}
		v := el.Field(i).Interface()
		if reflect.ValueOf(v).Kind() == reflect.Ptr && reflect.ValueOf(v).IsNil() {
			continue
		}
		if c, ok := v.(Config); ok {
			c.SetProviderDefaults(dataProviderForConfig(c, dp))
		}
	}
}

// CallSetForFields walks all exported, initialized (non-nil) fields of the passed object
// and calls Set() on each one implementing Config, stopping at the first error.
func CallSetForFields(obj interface{}, dp DataProvider) error {
	el := reflect.ValueOf(obj).Elem()
	for i := 0; i < el.NumField(); i++ {
		if !el.Type().Field(i).IsExported() {
			continue
		}
		v := el.Field(i).Interface()
		if reflect.ValueOf(v).Kind() == reflect.Ptr && reflect.ValueOf(v).IsNil() {
			continue
		}
		if c, ok := v.(Config); ok {
			if err := c.Set(dataProviderForConfig(c, dp)); err != nil {
				return err
			}
		}
	}
	return nil
}
