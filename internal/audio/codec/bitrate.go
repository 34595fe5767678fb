package codec

// SetBitrate sets the target bitrate in bits per second, realizing the
// encoder if it does not exist yet. A value libopus rejects is returned as a
// StatusError wrapping ErrBadArgument.
func (c *Codec) SetBitrate(bitrate int) error {
	if err := c.ensureEncoder(); err != nil {
		return err
	}
	if err := c.encoder.SetBitrate(bitrate); err != nil {
		c.log.Warn().Err(err).Int("bitrate", bitrate).Msg("Bitrate rejected")
		return c.engineError("set bitrate", err)
	}
	c.log.Debug().Int("bitrate", bitrate).Msg("Bitrate set")
	return nil
}

// Bitrate returns the encoder's configured bitrate in bits per second.
func (c *Codec) Bitrate() (int, error) {
	if err := c.ensureEncoder(); err != nil {
		return 0, err
	}
	bitrate, err := c.encoder.Bitrate()
	if err != nil {
		return 0, c.engineError("get bitrate", err)
	}
	return bitrate, nil
}
