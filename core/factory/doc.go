// Package factory provides a small generic registry used to instantiate
// pluggable modules (metrics sinks, notification senders) from
// configuration. A module is described by a type string and a map of raw
// settings; factories decode the settings into typed structs with Decode.
//
// Example usage:
//
//	reg := factory.NewRegistry[notify.Sender]("sender")
//	reg.Register("outbox", func(conf map[string]any) (notify.Sender, error) {
//	    var c struct{ Path string `json:"path"` }
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return NewOutboxSender(c.Path)
//	})
//	s, err := reg.Create(factory.ModuleConfig{Type: "outbox", Conf: map[string]any{"path": "outbox.jsonl"}})
package factory
