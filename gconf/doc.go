/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension declares its own configuration type and stores a single
instance of it under "_c:<package name>". The configuration is loaded from
the genesis file and can be later updated by the configuration owner using
UpdateConfigurationHandler.
*/
package gconf
