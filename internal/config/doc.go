// Package config manages user-level settings stored at
// ~/.python-bootstrap/config.yaml. Settings pre-fill package metadata such as
// the author and hosting usernames, and select the license-text service.
// Every key can be overridden with a PYTHON_BOOTSTRAP_<KEY> environment variable.
package config
