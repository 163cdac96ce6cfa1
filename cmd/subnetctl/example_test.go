package main

import (
	"context"
	"fmt"
)

func Example_report() {
	args := []string{"subnetctl", "--quiet", "report", "192.168.0.0/24"}
	if err := createApp().Run(context.Background(), args); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// CIDR            192.168.0.0/24
	// Bits            24
	// Address         192.168.0.0      C0A80000
	// Network         192.168.0.0      C0A80000
	// Broadcast       192.168.0.255    C0A800FF
	// Netmask         255.255.255.0    FFFFFF00
	// Hostmask        0.0.0.255        000000FF
	// Min host        192.168.0.1
	// Max host        192.168.0.254
	// Addresses       256
	// Usable hosts    254
	// ARPA            0.0.168.192.in-addr.arpa
	// Classification  private
}

func Example_exclude() {
	args := []string{"subnetctl", "--quiet", "exclude", "192.168.0.0/24", "192.168.0.64/26"}
	if err := createApp().Run(context.Background(), args); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// 192.168.0.0/26
	// 192.168.0.128/25
}

func Example_adjacent() {
	args := []string{"subnetctl", "--quiet", "adjacent", "--count=-2", "10.0.4.0/24"}
	if err := createApp().Run(context.Background(), args); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// 10.0.2.0/24
	// 10.0.3.0/24
}

func Example_hosts() {
	args := []string{"subnetctl", "--quiet", "hosts", "100"}
	if err := createApp().Run(context.Background(), args); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// Hosts requested  100
	// Prefix           /25
	// Usable hosts     126
	// Addresses        128
}
