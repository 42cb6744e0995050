package adb

import (
	"fmt"

	goadb "github.com/zach-klippenstein/goadb"
)

// Client is a thin wrapper over the adb server, used to clone device
// fingerprints from real hardware.
type Client struct {
	adb *goadb.Adb
	dev *goadb.Device
}

func CreateClient() (*Client, error) {
	adb, err := goadb.NewWithConfig(goadb.ServerConfig{})
	if err != nil {
		return nil, err
	}

	return &Client{
		adb: adb,
	}, nil
}

func (client *Client) SelectAnyUsbDevice() {
	client.dev = client.adb.Device(
		goadb.AnyUsbDevice(),
	)
}

// RunCommand executes a shell command on the selected device.
func (client *Client) RunCommand(cmd string, args ...string) (string, error) {
	if client.dev == nil {
		return "", fmt.Errorf("no adb device selected")
	}
	return client.dev.RunCommand(cmd, args...)
}
